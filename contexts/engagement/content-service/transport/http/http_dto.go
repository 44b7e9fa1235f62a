package http

import "clipops/contexts/engagement/content-service/ports"

type GenerateContentRequest struct {
	Template string            `json:"template"`
	Audience string            `json:"audience,omitempty"`
	Fields   map[string]string `json:"fields"`
}

type GenerateContentResponse struct {
	Content ports.GeneratedContent `json:"content"`
}

type ListContentResponse struct {
	Items []ports.GeneratedContent `json:"items"`
}

type ListTemplatesResponse struct {
	Templates []TemplateDTO `json:"templates"`
}

type TemplateDTO struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}
