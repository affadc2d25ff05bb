package labeling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/catalog"
	"github.com/sellerdesk/backend/internal/domain/shared"
	"github.com/sellerdesk/backend/internal/infrastructure/kv"
	"github.com/sellerdesk/backend/internal/infrastructure/persistence"
)

type fixture struct {
	templates *persistence.TemplateRepository
	elements  *persistence.ElementRepository
	queue     *persistence.QueueRepository
	cleanup   *persistence.CleanupRuleRepository
	formats   *persistence.CodeFormatRepository
	shippers  *persistence.ShipperRepository
	products  *persistence.ProductRepository

	templateSvc *TemplateService
	queueSvc    *QueueService
	formatSvc   *CodeFormatService
	cleanupSvc  *CleanupService
	ruleSvc     *RuleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	log := zap.NewNop()

	f := &fixture{
		templates: persistence.NewTemplateRepository(ctx, store, log, nil),
		elements:  persistence.NewElementRepository(ctx, store, log, nil),
		queue:     persistence.NewQueueRepository(ctx, store, log, nil),
		cleanup:   persistence.NewCleanupRuleRepository(ctx, store, log, nil),
		formats:   persistence.NewCodeFormatRepository(ctx, store, log, nil),
		shippers:  persistence.NewShipperRepository(ctx, store, log, nil),
		products:  persistence.NewProductRepository(testProducts(t)),
	}
	f.templateSvc = NewTemplateService(f.templates, f.elements, log)
	f.queueSvc = NewQueueService(f.queue, f.templates, f.cleanup, f.products, log)
	f.formatSvc = NewCodeFormatService(f.formats, log)
	f.cleanupSvc = NewCleanupService(f.cleanup, log)
	f.ruleSvc = NewRuleService(f.shippers, f.templates, f.products, log)
	return f
}

func testProducts(t *testing.T) []catalog.Product {
	t.Helper()
	shirt, err := catalog.NewProduct("TS-001", "[샘플] 면 반팔 티셔츠", decimal.NewFromInt(12900))
	require.NoError(t, err)
	shirt.Category = "의류"

	box, err := catalog.NewProduct("BX-201", "이사용 대형 박스 5매", decimal.NewFromInt(9900))
	require.NoError(t, err)
	box.Category = "박스"

	return []catalog.Product{*shirt, *box}
}

func (f *fixture) createTemplate(t *testing.T, name string) *TemplateResponse {
	t.Helper()
	resp, err := f.templateSvc.CreateTemplate(context.Background(), CreateTemplateRequest{Name: name})
	require.NoError(t, err)
	return resp
}

func domainErrorCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code
}

// =============================================================================
// Templates
// =============================================================================

func TestTemplateService_CreateAppliesDefaultsAndPrepends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createTemplate(t, "기본 라벨")
	second := f.createTemplate(t, "대형 라벨")

	assert.Equal(t, 3, first.Columns)
	assert.Equal(t, 5, first.Rows)
	assert.Equal(t, 50, first.LabelWidth)
	assert.Equal(t, 30, first.LabelHeight)
	assert.Equal(t, 12, first.FontSize)
	assert.Equal(t, 2, first.MarginTop)
	assert.Equal(t, 2, first.MarginLeft)
	assert.Equal(t, 1, first.Gap)
	assert.False(t, first.AutoCut)
	assert.False(t, first.IsDefault)

	list, err := f.templateSvc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestTemplateService_DefaultTemplateCannotBeDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createTemplate(t, "기본 라벨")
	id := uuid.MustParse(created.ID)
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, id))

	err := f.templateSvc.DeleteTemplate(ctx, id)
	assert.Equal(t, "INVALID_STATE", domainErrorCode(t, err))

	// Still there.
	_, err = f.templateSvc.GetTemplate(ctx, id)
	assert.NoError(t, err)
}

func TestTemplateService_SetDefaultMovesTheFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.MustParse(f.createTemplate(t, "A").ID)
	b := uuid.MustParse(f.createTemplate(t, "B").ID)

	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, a))
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, b))

	list, err := f.templateSvc.ListTemplates(ctx)
	require.NoError(t, err)
	for _, tpl := range list {
		assert.Equal(t, tpl.ID == b.String(), tpl.IsDefault)
	}
}

func TestTemplateService_DuplicateCopiesLayoutUnderNewIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	source := f.createTemplate(t, "기본 라벨")
	sourceID := uuid.MustParse(source.ID)
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, sourceID))

	_, err := f.templateSvc.AddElement(ctx, sourceID, AddElementRequest{Type: "text", Label: "상품명", X: 8, Y: 8})
	require.NoError(t, err)

	copied, err := f.templateSvc.DuplicateTemplate(ctx, sourceID)
	require.NoError(t, err)

	assert.Equal(t, "기본 라벨 (복사본)", copied.Name)
	assert.False(t, copied.IsDefault)
	assert.NotEqual(t, source.ID, copied.ID)

	sourceElements, err := f.templateSvc.ListElements(ctx, sourceID)
	require.NoError(t, err)
	copiedElements, err := f.templateSvc.ListElements(ctx, uuid.MustParse(copied.ID))
	require.NoError(t, err)
	require.Len(t, copiedElements, len(sourceElements))
	assert.NotEqual(t, sourceElements[0].ID, copiedElements[0].ID)
	assert.Equal(t, sourceElements[0].X, copiedElements[0].X)
}

func TestTemplateService_AddElementUsesTypeDefaultsAndClamps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 50x30 mm -> 200x120 px printable bounds.
	templateID := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)

	barcode, err := f.templateSvc.AddElement(ctx, templateID, AddElementRequest{Type: "barcode", X: 500, Y: 500})
	require.NoError(t, err)
	assert.Equal(t, 160, barcode.Width)
	assert.Equal(t, 40, barcode.Height)
	assert.Equal(t, 0, barcode.FontSize)
	assert.Equal(t, 40, barcode.X)
	assert.Equal(t, 80, barcode.Y)

	qr, err := f.templateSvc.AddElement(ctx, templateID, AddElementRequest{Type: "qr", X: -10, Y: -10})
	require.NoError(t, err)
	assert.Equal(t, 60, qr.Width)
	assert.Equal(t, 60, qr.Height)
	assert.Equal(t, 0, qr.X)
	assert.Equal(t, 0, qr.Y)
}

func TestTemplateService_MoveAndResizeStayInsideBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	templateID := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	el, err := f.templateSvc.AddElement(ctx, templateID, AddElementRequest{Type: "text", Label: "상품명", X: 0, Y: 0})
	require.NoError(t, err)
	elementID := uuid.MustParse(el.ID)

	moved, err := f.templateSvc.MoveElement(ctx, elementID, MoveElementRequest{X: 999, Y: 999})
	require.NoError(t, err)
	assert.Equal(t, 200-moved.Width, moved.X)
	assert.Equal(t, 120-moved.Height, moved.Y)

	// Oversize element pins to the origin.
	wide := 400
	tall := 200
	resized, err := f.templateSvc.UpdateElement(ctx, elementID, UpdateElementRequest{Width: &wide, Height: &tall})
	require.NoError(t, err)
	assert.Equal(t, 0, resized.X)
	assert.Equal(t, 0, resized.Y)
}

// =============================================================================
// Queue
// =============================================================================

func TestQueueService_EnqueueSanitizesNamesWithCurrentRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	templateID := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, templateID))

	_, err := f.cleanupSvc.CreateRule(ctx, CreateCleanupRuleRequest{Keyword: "[샘플]", Description: "샘플 표기 제거"})
	require.NoError(t, err)

	result, err := f.queueSvc.Enqueue(ctx, EnqueueRequest{SKUs: []string{"TS-001"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	items, err := f.queueSvc.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "[샘플] 면 반팔 티셔츠", items[0].ProductName)
	assert.Equal(t, "면 반팔 티셔츠", items[0].SanitizedName)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "PENDING", items[0].Status)
	assert.Equal(t, templateID.String(), items[0].TemplateID)
}

func TestQueueService_EnqueueEmptySelectionChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.queueSvc.Enqueue(ctx, EnqueueRequest{SKUs: []string{}})
	assert.Equal(t, "EMPTY_SELECTION", domainErrorCode(t, err))

	items, err := f.queueSvc.ListQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQueueService_UpdateStatusAllowsBackwardMoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	templateID := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, templateID))
	_, err := f.queueSvc.Enqueue(ctx, EnqueueRequest{SKUs: []string{"TS-001", "BX-201"}})
	require.NoError(t, err)

	items, err := f.queueSvc.ListQueue(ctx)
	require.NoError(t, err)
	ids := []uuid.UUID{uuid.MustParse(items[0].ID), uuid.MustParse(items[1].ID)}

	result, err := f.queueSvc.UpdateStatus(ctx, UpdateQueueStatusRequest{IDs: ids, Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Affected)

	// Re-print: back to PENDING.
	result, err = f.queueSvc.UpdateStatus(ctx, UpdateQueueStatusRequest{IDs: ids[:1], Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	items, err = f.queueSvc.ListQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", items[0].Status)
	assert.Equal(t, "COMPLETED", items[1].Status)
}

func TestQueueService_RemoveSkipsUnknownIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	templateID := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	require.NoError(t, f.templateSvc.SetDefaultTemplate(ctx, templateID))
	_, err := f.queueSvc.Enqueue(ctx, EnqueueRequest{SKUs: []string{"TS-001"}})
	require.NoError(t, err)

	items, err := f.queueSvc.ListQueue(ctx)
	require.NoError(t, err)

	result, err := f.queueSvc.Remove(ctx, RemoveQueueItemsRequest{IDs: []uuid.UUID{uuid.MustParse(items[0].ID), uuid.New()}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	_, err = f.queueSvc.Remove(ctx, RemoveQueueItemsRequest{IDs: nil})
	assert.Equal(t, "EMPTY_SELECTION", domainErrorCode(t, err))
}

// =============================================================================
// Code formats
// =============================================================================

func TestCodeFormatService_GenerateNextAdvancesAndPersists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.formatSvc.CreateFormat(ctx, CreateCodeFormatRequest{
		Name:    "입고 라벨 코드",
		Pattern: "{DATE:yyMMdd}-{SKU}-{SEQ:4}",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Seq)

	id := uuid.MustParse(created.ID)
	f.formatSvc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	first, err := f.formatSvc.GenerateNext(ctx, id, GenerateCodeRequest{SKU: "TS-001"})
	require.NoError(t, err)
	assert.Equal(t, "260314-TS-001-0001", first.Code)

	second, err := f.formatSvc.GenerateNext(ctx, id, GenerateCodeRequest{SKU: "TS-001"})
	require.NoError(t, err)
	assert.Equal(t, "260314-TS-001-0002", second.Code)

	stored, err := f.formats.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.Seq)
}

func TestCodeFormatService_GenerateNextOnMissingFormat(t *testing.T) {
	f := newFixture(t)

	_, err := f.formatSvc.GenerateNext(context.Background(), uuid.New(), GenerateCodeRequest{SKU: "TS-001"})
	assert.Equal(t, "NOT_FOUND", domainErrorCode(t, err))
}

func TestCodeFormatService_UpdateRejectsBlankFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.formatSvc.CreateFormat(ctx, CreateCodeFormatRequest{
		Name:    "입고 라벨 코드",
		Pattern: "{SEQ:4}",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	blank := "   "
	_, err = f.formatSvc.UpdateFormat(ctx, id, UpdateCodeFormatRequest{Name: &blank})
	assert.Equal(t, "INVALID_NAME", domainErrorCode(t, err))

	_, err = f.formatSvc.UpdateFormat(ctx, id, UpdateCodeFormatRequest{Pattern: &blank})
	assert.Equal(t, "INVALID_PATTERN", domainErrorCode(t, err))

	stored, err := f.formats.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "입고 라벨 코드", stored.Name)
	assert.Equal(t, "{SEQ:4}", stored.Pattern)
}

// =============================================================================
// Cleanup rules
// =============================================================================

func TestCleanupService_PreviewUsesRuleOrderAndToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sample, err := f.cleanupSvc.CreateRule(ctx, CreateCleanupRuleRequest{Keyword: "[샘플]"})
	require.NoError(t, err)
	_, err = f.cleanupSvc.CreateRule(ctx, CreateCleanupRuleRequest{Keyword: "무료배송"})
	require.NoError(t, err)

	preview, err := f.cleanupSvc.Preview(ctx, SanitizePreviewRequest{Name: "[샘플] 무료배송 티셔츠"})
	require.NoError(t, err)
	assert.Equal(t, "티셔츠", preview.Sanitized)

	disabled := false
	_, err = f.cleanupSvc.UpdateRule(ctx, uuid.MustParse(sample.ID), UpdateCleanupRuleRequest{Enabled: &disabled})
	require.NoError(t, err)

	preview, err = f.cleanupSvc.Preview(ctx, SanitizePreviewRequest{Name: "[샘플] 무료배송 티셔츠"})
	require.NoError(t, err)
	assert.Equal(t, "[샘플] 티셔츠", preview.Sanitized)
}

func TestCleanupService_UpdateRejectsBlankKeyword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.cleanupSvc.CreateRule(ctx, CreateCleanupRuleRequest{Keyword: "[샘플]"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	blank := "   "
	_, err = f.cleanupSvc.UpdateRule(ctx, id, UpdateCleanupRuleRequest{Keyword: &blank})
	assert.Equal(t, "INVALID_KEYWORD", domainErrorCode(t, err))

	stored, err := f.cleanup.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "[샘플]", stored.Keyword)
}

// =============================================================================
// Rules and selection
// =============================================================================

func TestRuleService_SelectTemplateByPriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	basic := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	large := uuid.MustParse(f.createTemplate(t, "대형 라벨").ID)

	shipper, err := f.ruleSvc.CreateShipper(ctx, CreateShipperRequest{Name: "쿠팡", Code: "cpg"})
	require.NoError(t, err)
	assert.Equal(t, "CPG", shipper.Code)
	shipperID := uuid.MustParse(shipper.ID)

	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{
		TemplateID: large,
		Priority:   1,
		Conditions: []ConditionDTO{{Field: "category", Operator: "in", Values: []string{"박스", "대형"}}},
	})
	require.NoError(t, err)
	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{TemplateID: basic, Priority: 9})
	require.NoError(t, err)

	selection, err := f.ruleSvc.SelectTemplate(ctx, shipperID, SelectTemplateRequest{SKU: "BX-201"})
	require.NoError(t, err)
	require.True(t, selection.Matched)
	assert.Equal(t, large.String(), selection.Template.ID)

	// Falls through to the catch-all.
	selection, err = f.ruleSvc.SelectTemplate(ctx, shipperID, SelectTemplateRequest{SKU: "TS-001"})
	require.NoError(t, err)
	require.True(t, selection.Matched)
	assert.Equal(t, basic.String(), selection.Template.ID)
}

func TestRuleService_SelectTemplateNoMatchIsNotAnError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	large := uuid.MustParse(f.createTemplate(t, "대형 라벨").ID)
	shipper, err := f.ruleSvc.CreateShipper(ctx, CreateShipperRequest{Name: "쿠팡", Code: "CPG"})
	require.NoError(t, err)
	shipperID := uuid.MustParse(shipper.ID)

	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{
		TemplateID: large,
		Priority:   1,
		Conditions: []ConditionDTO{{Field: "category", Operator: "equals", Value: "박스"}},
	})
	require.NoError(t, err)

	selection, err := f.ruleSvc.SelectTemplate(ctx, shipperID, SelectTemplateRequest{SKU: "TS-001"})
	require.NoError(t, err)
	assert.False(t, selection.Matched)
	assert.Nil(t, selection.Template)
}

func TestRuleService_AddRuleValidatesTemplateAndConditions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	basic := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	shipper, err := f.ruleSvc.CreateShipper(ctx, CreateShipperRequest{Name: "쿠팡", Code: "CPG"})
	require.NoError(t, err)
	shipperID := uuid.MustParse(shipper.ID)

	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{TemplateID: uuid.New(), Priority: 1})
	assert.Equal(t, "NOT_FOUND", domainErrorCode(t, err))

	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{
		TemplateID: basic,
		Priority:   1,
		Conditions: []ConditionDTO{{Field: "warehouse", Operator: "equals", Value: "A"}},
	})
	assert.Equal(t, "INVALID_FIELD", domainErrorCode(t, err))

	_, err = f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{
		TemplateID: basic,
		Priority:   1,
		Conditions: []ConditionDTO{{Field: "category", Operator: "in"}},
	})
	assert.Equal(t, "INVALID_VALUE", domainErrorCode(t, err))
}

func TestRuleService_RemoveRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	basic := uuid.MustParse(f.createTemplate(t, "기본 라벨").ID)
	shipper, err := f.ruleSvc.CreateShipper(ctx, CreateShipperRequest{Name: "쿠팡", Code: "CPG"})
	require.NoError(t, err)
	shipperID := uuid.MustParse(shipper.ID)

	rule, err := f.ruleSvc.AddRule(ctx, shipperID, CreateRuleRequest{TemplateID: basic, Priority: 1})
	require.NoError(t, err)

	require.NoError(t, f.ruleSvc.RemoveRule(ctx, shipperID, uuid.MustParse(rule.ID)))
	assert.ErrorIs(t, f.ruleSvc.RemoveRule(ctx, shipperID, uuid.MustParse(rule.ID)), shared.ErrNotFound)
}
