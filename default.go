package comptes

// DefaultSnapshot is the built-in dataset used when no state file exists or
// the persisted one cannot be trusted: two French accounts and the usual
// category labels, no transactions.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Accounts: []Account{
			{ID: "CCP", Name: "Compte Courant Postal", Balance: A(0)},
			{ID: "LIVRETA", Name: "Livret A", Balance: A(0)},
		},
		Categories: []string{
			"Alimentation",
			"Transport",
			"Logement",
			"Loisirs",
			"Santé",
			"Salaire",
			TransferCategory,
			"Autre",
		},
		Transactions: []Transaction{},
	}
}
