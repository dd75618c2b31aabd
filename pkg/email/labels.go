package email

// ServiceLabels maps service codes to the German labels used in emails
var ServiceLabels = map[string]string{
	"website": "Website",
	"webapp":  "Web-Applikation",
	"mobile":  "Mobile App",
	"other":   "Sonstiges",
}

// BudgetLabels maps budget codes to the German labels used in emails
var BudgetLabels = map[string]string{
	"small":      "bis 5.000 €",
	"medium":     "5.000 – 15.000 €",
	"large":      "15.000 – 50.000 €",
	"enterprise": "über 50.000 €",
}

// BudgetNotSpecified is shown in the notification when no budget was chosen
const BudgetNotSpecified = "Nicht angegeben"

// ServiceLabel returns the label for code, or code itself when unknown
func ServiceLabel(code string) string {
	if label, ok := ServiceLabels[code]; ok {
		return label
	}
	return code
}

// BudgetLabel returns the label for code, or code itself when unknown
func BudgetLabel(code string) string {
	if label, ok := BudgetLabels[code]; ok {
		return label
	}
	return code
}
