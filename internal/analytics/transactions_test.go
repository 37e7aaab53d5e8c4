package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpulse/internal/tabular"
)

func TestMemberTransactions_MergedNewestFirst(t *testing.T) {
	billed := tabular.Parse(
		"Member ID,Amount,Created,Transaction Type,Transaction Reason\n" +
			"M1,100.00,2024-01-01,member_bill,move_in_fee\n" +
			"M2,50.00,2024-01-02,member_bill,\n")
	collected := tabular.Parse(
		"Member ID,Gross Collected,Host Earnings,Total Fees,Created,Bill Type\n" +
			"M1,80.00,72.00,-8.00,2024-01-05,Rent\n")

	transactions := MemberTransactions("M1", billed, collected)

	require.Len(t, transactions, 2)

	newest := transactions[0]
	assert.Equal(t, "Collected", newest.Kind)
	assert.Equal(t, "Rent", newest.Description)
	require.NotNil(t, newest.Gross)
	assert.Equal(t, 80.0, *newest.Gross)
	require.NotNil(t, newest.Fees)
	assert.Equal(t, 8.0, *newest.Fees)
	assert.Nil(t, newest.Amount)

	oldest := transactions[1]
	assert.Equal(t, "Billed", oldest.Kind)
	assert.Equal(t, "Member Bill - Move In Fee", oldest.Description)
	require.NotNil(t, oldest.Amount)
	assert.Equal(t, -100.0, *oldest.Amount)
	assert.Nil(t, oldest.Gross)
}

func TestMemberTransactions_DescriptionDefaults(t *testing.T) {
	billed := tabular.Parse("Member ID,Amount,Created\nM1,10.00,2024-01-01\n")
	collected := tabular.Parse("Member ID,Gross Collected,Created\nM1,10.00,2024-01-02\n")

	transactions := MemberTransactions("M1", billed, collected)

	require.Len(t, transactions, 2)
	assert.Equal(t, "Payment", transactions[0].Description)
	assert.Equal(t, "Charge", transactions[1].Description)
}

func TestMemberTransactions_UnknownMember(t *testing.T) {
	billed := tabular.Parse("Member ID,Amount,Created\nM1,10.00,2024-01-01\n")

	assert.Empty(t, MemberTransactions("M9", billed, nil))
}

func TestTitleLabel(t *testing.T) {
	assert.Equal(t, "Move In Fee", titleLabel("move_in_fee"))
	assert.Equal(t, "Rent", titleLabel("rent"))
	assert.Equal(t, "", titleLabel(""))
}
