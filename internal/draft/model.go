package draft

// Tier is a named quality/cost level of the extraction model.
type Tier string

const (
	TierFast    Tier = "fast"
	TierQuality Tier = "quality"
)

// Role of a member inside an expense
type Role string

const (
	RolePayer       Role = "payer"
	RoleParticipant Role = "participant"
)

// UserSentinel is the member name the model uses for the person who typed the text.
const UserSentinel = "USER"

// Draft is one tier's structured reading of the free text. It is never persisted.
type Draft struct {
	Expense ExpenseFields `json:"expense"`
	Members []Member      `json:"members"`
}

// ExpenseFields are the numeric/descriptive half of a draft
type ExpenseFields struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Member is a freeform participant as named in the text
type Member struct {
	Name  string  `json:"name"`
	Role  Role    `json:"role"`
	Split float64 `json:"split"`
}
