package httpadapter

import (
	"context"
	"log/slog"
	"sort"

	"clipops/contexts/engagement/content-service/application"
	"clipops/contexts/engagement/content-service/domain"
	httptransport "clipops/contexts/engagement/content-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GenerateContentHandler(ctx context.Context, req httptransport.GenerateContentRequest) (httptransport.GenerateContentResponse, error) {
	content, err := h.Service.Generate(ctx, application.GenerateInput{
		Template: req.Template,
		Audience: req.Audience,
		Fields:   req.Fields,
	})
	if err != nil {
		return httptransport.GenerateContentResponse{}, err
	}
	return httptransport.GenerateContentResponse{Content: content}, nil
}

func (h Handler) ListContentHandler(ctx context.Context, limit int) (httptransport.ListContentResponse, error) {
	items, err := h.Service.ListRecent(ctx, limit)
	if err != nil {
		return httptransport.ListContentResponse{}, err
	}
	return httptransport.ListContentResponse{Items: items}, nil
}

func (h Handler) ListTemplatesHandler(_ context.Context) httptransport.ListTemplatesResponse {
	names := domain.TemplateNames()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	templates := make([]httptransport.TemplateDTO, 0, len(names))
	for _, name := range names {
		fields, err := domain.Placeholders(name)
		if err != nil {
			continue
		}
		templates = append(templates, httptransport.TemplateDTO{
			Name:   string(name),
			Fields: fields,
		})
	}
	return httptransport.ListTemplatesResponse{Templates: templates}
}
