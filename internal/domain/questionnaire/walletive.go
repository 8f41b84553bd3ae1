package questionnaire

// Question IDs of the onboarding survey.
const (
	QuestionDisplayName        QuestionID = "display_name"
	QuestionMonthlyIncome      QuestionID = "monthly_income"
	QuestionFixedExpenses      QuestionID = "fixed_expenses"
	QuestionVariableExpenses   QuestionID = "variable_expenses"
	QuestionHasDebt            QuestionID = "has_debt"
	QuestionTotalDebt          QuestionID = "total_debt"
	QuestionMonthlyDebtPayment QuestionID = "monthly_debt_payment"
	QuestionHasSavingsGoal     QuestionID = "has_savings_goal"
	QuestionGoalAmount         QuestionID = "goal_amount"
	QuestionGoalMonths         QuestionID = "goal_months"
	QuestionAlertThreshold     QuestionID = "alert_threshold"
)

// MaxGoalMonths bounds the savings goal horizon to one hundred years.
const MaxGoalMonths = 1200

// Onboarding returns the default Walletive questionnaire. A fresh slice is
// returned on every call.
func Onboarding() []Question {
	hasDebt := AnsweredYes(QuestionHasDebt)
	hasGoal := AnsweredYes(QuestionHasSavingsGoal)

	return []Question{
		{
			ID:          QuestionDisplayName,
			Prompt:      "¿Cuál es tu nombre?",
			Placeholder: "Ejemplo: Juan Pérez",
			Type:        QuestionTypeText,
		},
		{
			ID:          QuestionMonthlyIncome,
			Prompt:      "¿Cuál es tu ingreso mensual promedio?",
			Placeholder: "Ejemplo: 2500000",
			Type:        QuestionTypeFloat,
		},
		{
			ID:          QuestionFixedExpenses,
			Prompt:      "¿Cuánto gastas mensualmente en gastos fijos?",
			Placeholder: "Ejemplo: 1200000",
			Type:        QuestionTypeFloat,
		},
		{
			ID:          QuestionVariableExpenses,
			Prompt:      "¿Cuánto gastas mensualmente en gastos variables?",
			Placeholder: "Ejemplo: 800000",
			Type:        QuestionTypeFloat,
		},
		{
			ID:     QuestionHasDebt,
			Prompt: "¿Tienes alguna deuda activa?",
			Type:   QuestionTypeBoolean,
		},
		{
			ID:          QuestionTotalDebt,
			Prompt:      "¿Cuál es el monto total actual de tus deudas?",
			Placeholder: "Ejemplo: 5000000",
			Type:        QuestionTypeFloat,
			When:        hasDebt,
		},
		{
			ID:          QuestionMonthlyDebtPayment,
			Prompt:      "¿Cuánto pagas mensualmente por tus deudas?",
			Placeholder: "Ejemplo: 400000",
			Type:        QuestionTypeFloat,
			When:        hasDebt,
		},
		{
			ID:     QuestionHasSavingsGoal,
			Prompt: "¿Tienes una meta de ahorro en mente?",
			Type:   QuestionTypeBoolean,
		},
		{
			ID:          QuestionGoalAmount,
			Prompt:      "¿Cuál es el monto que deseas ahorrar?",
			Placeholder: "Ejemplo: 3000000",
			Type:        QuestionTypeFloat,
			When:        hasGoal,
			Positive:    true,
		},
		{
			ID:          QuestionGoalMonths,
			Prompt:      "¿En cuántos meses deseas alcanzar esa meta?",
			Placeholder: "Ejemplo: 12",
			Type:        QuestionTypeInt,
			When:        hasGoal,
			Max:         MaxGoalMonths,
		},
		{
			ID:          QuestionAlertThreshold,
			Prompt:      "¿Qué porcentaje de gasto mensual sobre ingreso te parece peligroso? (opcional)",
			Placeholder: "Ejemplo: 80",
			Type:        QuestionTypeOptionalFloat,
		},
	}
}
