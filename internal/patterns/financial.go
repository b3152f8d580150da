package patterns

import (
	"regexp"

	"github.com/datahunter/datahunter/internal/types"
)

var cardPatterns = []*Pattern{
	{Category: types.CatCreditCards, Name: "visa", Description: "Visa card number",
		re: regexp.MustCompile(`\b4[0-9]{12}(?:[0-9]{3})?\b`)},
	{Category: types.CatCreditCards, Name: "mastercard", Description: "MasterCard number",
		re: regexp.MustCompile(`\b5[1-5][0-9]{14}\b`)},
	{Category: types.CatCreditCards, Name: "amex", Description: "American Express card number",
		re: regexp.MustCompile(`\b3[47][0-9]{13}\b`)},
	{Category: types.CatCreditCards, Name: "discover", Description: "Discover card number",
		re: regexp.MustCompile(`\b6(?:011|5[0-9]{2})[0-9]{12}\b`)},
}

// Very broad: any 9-18 digit run, including phone numbers and timestamps.
var bankAccountPattern = &Pattern{
	Category: types.CatBankAccounts, Name: "bank_account", Description: "Bank-account-shaped digit run",
	re: regexp.MustCompile(`\b\d{9,18}\b`),
}
