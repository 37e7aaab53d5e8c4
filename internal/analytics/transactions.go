package analytics

import (
	"math"
	"sort"
	"strings"

	"memberpulse/internal/tabular"
	"memberpulse/pkg/contracts/domain"
)

// MemberTransactions merges a member's billed and collected rows into the
// drill-down transaction list, newest first. Undated rows sort last. The
// stable sort keeps same-date rows in stream order across runs.
func MemberTransactions(memberID string, billed, collected []tabular.Record) []domain.Transaction {
	var transactions []domain.Transaction

	for _, row := range billed {
		if row.Get("Member ID") != memberID {
			continue
		}
		amount := -tabular.Amount(row.Get("Amount"))
		date, _ := tabular.ParseDate(row.Get("Created"))

		description := joinLabels(
			titleLabel(row.Get("Transaction Type")),
			titleLabel(row.Get("Transaction Reason")),
		)
		if description == "" {
			description = "Charge"
		}

		transactions = append(transactions, domain.Transaction{
			Date:        date,
			Kind:        "Billed",
			Description: description,
			Amount:      &amount,
		})
	}

	for _, row := range collected {
		if row.Get("Member ID") != memberID {
			continue
		}
		gross := tabular.Amount(row.Get("Gross Collected"))
		fees := math.Abs(tabular.Amount(row.Get("Total Fees")))
		host := tabular.Amount(row.Get("Host Earnings"))
		date, _ := tabular.ParseDate(row.Get("Created"))

		description := row.Get("Bill Type")
		if description == "" {
			description = "Payment"
		}

		transactions = append(transactions, domain.Transaction{
			Date:        date,
			Kind:        "Collected",
			Description: description,
			Gross:       &gross,
			Fees:        &fees,
			Host:        &host,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	return transactions
}

// titleLabel turns export enum values like "move_in_fee" into "Move In Fee".
func titleLabel(value string) string {
	if value == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(value, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func joinLabels(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " - ")
}
