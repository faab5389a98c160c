package usecase

import (
	"context"

	"refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/catalog/dto"
	catalogin "refdeck/internal/modules/catalog/port/in"
	"refdeck/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (domain.Snapshot, error) {
	return i.svc.Load(ctx)
}

func (i *Interactor) Reload(ctx context.Context) (domain.Snapshot, error) {
	return i.svc.Reload(ctx)
}

func (i *Interactor) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return i.svc.Snapshot(ctx)
}

func (i *Interactor) Report(ctx context.Context) (dto.LoadReport, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.LoadReport{}, err
	}
	counts := snap.Index.Counts()
	report := dto.LoadReport{
		Source:     snap.Source,
		Variant:    string(snap.Index.Variant()),
		Categories: counts.Categories,
		Topics:     counts.Topics,
		Subtopics:  counts.Subtopics,
		Cards:      counts.Cards,
		Orphans:    counts.Orphans,
		Tags:       counts.Tags,
		LoadedAt:   snap.LoadedAt,
	}
	for _, r := range snap.Rejections {
		report.Rejections = append(report.Rejections, dto.RejectionOutput{Kind: string(r.Kind), ID: r.ID, Reason: r.Reason})
	}
	return report, nil
}

func (i *Interactor) Preview(ctx context.Context, slug string) (dto.PreviewOutput, error) {
	preview, err := i.svc.Preview(ctx, slug)
	if err != nil {
		return dto.PreviewOutput{}, err
	}
	return dto.PreviewOutput{
		Slug:         preview.Slug,
		Title:        preview.Title,
		Summary:      preview.Summary,
		Chapters:     preview.Chapters,
		ChapterCount: preview.ChapterCount,
		CardCount:    preview.CardCount,
	}, nil
}

func (i *Interactor) Overview(ctx context.Context) ([]dto.OverviewGroupOutput, error) {
	overview, err := i.svc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OverviewGroupOutput, 0, len(overview.Groups))
	for _, group := range overview.Groups {
		item := dto.OverviewGroupOutput{}
		if group.Category != nil {
			item.CategorySlug = group.Category.Slug
			item.CategoryTitle = group.Category.Title
		}
		for _, topic := range group.Topics {
			item.Topics = append(item.Topics, dto.TopicSummaryOutput{
				Slug:         topic.Slug,
				Title:        topic.Title,
				Summary:      topic.Summary,
				ChapterCount: topic.ChapterCount,
				CardCount:    topic.CardCount,
			})
		}
		out = append(out, item)
	}
	return out, nil
}

func (i *Interactor) Tags(ctx context.Context) ([]string, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Index.Tags(), nil
}
