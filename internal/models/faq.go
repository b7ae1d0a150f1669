package models

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQResponse struct {
	Items []FAQItem `json:"items"`
}
