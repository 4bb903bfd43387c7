package models

type CVUploadResponse struct {
	Skills     SkillList `json:"skills"`
	Experience string    `json:"experience"`
	Education  string    `json:"education"`
	CVURL      string    `json:"cv_url"`
}

type CreateJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Requirements string `json:"requirements"`
	CompanyID    uint   `json:"company_id"`
}

type HiringStatusRequest struct {
	IsOpen bool `json:"isOpen"`
}

type ApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}
