package followup

import "fmt"

// riskPromptTemplate se completa con (treatment_type, days_since_visit).
const riskPromptTemplate = `As a dental AI assistant, analyze the potential complications for a patient who had %s
%d days ago and hasn't returned for follow-up. Consider:
1. Immediate risks
2. Long-term consequences
3. Recommended action timeline

Provide a concise but comprehensive assessment.`

// DefaultTreatmentType se usa cuando el paciente no tiene ningún tratamiento registrado.
const DefaultTreatmentType = "general checkup"

func BuildPrompt(treatmentType string, days int) string {
	return fmt.Sprintf(riskPromptTemplate, treatmentType, days)
}
