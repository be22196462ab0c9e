package insight

import (
	"context"
	"log/slog"
	"sort"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// GenerateInsightOutput holds the generated insight.
type GenerateInsightOutput struct {
	Insight       *entity.Insight
	PurchaseCount int
}

// GenerateInsightUseCase asks the AI collaborator to analyze purchase history.
type GenerateInsightUseCase struct {
	recordRepo      adapter.RecordRepository
	settingsRepo    adapter.SettingsRepository
	insightService  adapter.InsightService
	defaultCurrency string
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	recordRepo adapter.RecordRepository,
	settingsRepo adapter.SettingsRepository,
	insightService adapter.InsightService,
	defaultCurrency string,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		recordRepo:      recordRepo,
		settingsRepo:    settingsRepo,
		insightService:  insightService,
		defaultCurrency: defaultCurrency,
	}
}

// Execute builds the purchase digest and requests the analysis.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context) (*GenerateInsightOutput, error) {
	if uc.insightService == nil || !uc.insightService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightServiceUnavailable,
			"insight service is not configured",
			domainerror.ErrInsightServiceUnavailable,
		)
	}

	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGenerationFailed,
			"failed to load records",
			err,
		)
	}

	digest := BuildDigest(records)
	if len(digest) == 0 {
		return &GenerateInsightOutput{Insight: entity.EmptyHistoryInsight()}, nil
	}

	slog.Info("Requesting usage insight", "purchases", len(digest))

	insight, err := uc.insightService.Analyze(ctx, &adapter.InsightRequest{
		Purchases: digest,
		Currency:  uc.currency(ctx),
	})
	if err != nil {
		classified := classifyError(err)
		slog.Error("Insight generation failed",
			"code", classified.Code,
			"retryable", classified.Retryable,
			"error", err,
		)
		return nil, classified
	}

	return &GenerateInsightOutput{
		Insight:       insight,
		PurchaseCount: len(digest),
	}, nil
}

func (uc *GenerateInsightUseCase) currency(ctx context.Context) string {
	if uc.settingsRepo == nil {
		return uc.defaultCurrency
	}
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil || settings == nil || settings.Currency == "" {
		return uc.defaultCurrency
	}
	return settings.Currency
}

// BuildDigest converts purchases with units into the AI payload, oldest first.
func BuildDigest(records []*entity.Record) []entity.InsightDigestEntry {
	purchases := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r != nil && r.HasPurchasedUnits() {
			purchases = append(purchases, r)
		}
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Timestamp.Before(purchases[j].Timestamp)
	})

	digest := make([]entity.InsightDigestEntry, 0, len(purchases))
	for _, r := range purchases {
		digest = append(digest, entity.InsightDigestEntry{
			Date:      valueobject.DateKeyOf(r.Timestamp).String(),
			Price:     r.Price.InexactFloat64(),
			VAT:       r.VAT.InexactFloat64(),
			Fee:       r.ServiceFee.InexactFloat64(),
			TotalCost: r.TotalCost().InexactFloat64(),
			Units:     r.Units,
			Meter:     r.MeterReading,
		})
	}
	return digest
}
