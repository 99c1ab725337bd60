package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	TemplateDir string
}

type welcomeData struct {
	Plico        string
	CustomerName string
	ReferentName string
	ContractType string
	StartDate    string
	EndDate      string
	Token        string
}

type activationData struct {
	FullName      string
	ActivationKey string
}
