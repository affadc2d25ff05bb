package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/labeling"
	"github.com/sellerdesk/backend/internal/domain/shared"
	"github.com/sellerdesk/backend/internal/infrastructure/kv"
)

func newTestTemplateRepo(t *testing.T, store kv.Store) *TemplateRepository {
	t.Helper()
	return NewTemplateRepository(context.Background(), store, zap.NewNop(), defaultSeed().templates)
}

func TestTemplateRepository_SeedsWhenStoreIsEmpty(t *testing.T) {
	repo := newTestTemplateRepo(t, kv.NewMemoryStore())

	templates, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 3)

	def, err := repo.FindDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "기본 라벨 (50x30)", def.Name)
}

func TestTemplateRepository_SeedsWhenDocumentIsCorrupt(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), kv.KeyTemplates, []byte("{not json")))

	repo := newTestTemplateRepo(t, store)
	templates, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, templates, 3)
}

func TestTemplateRepository_InsertPrependsAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := newTestTemplateRepo(t, store)

	created, err := labeling.NewLabelTemplate("세일 라벨")
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, created))

	templates, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 4)
	assert.Equal(t, created.ID, templates[0].ID)

	// A second repository over the same store must see the persisted state.
	reloaded := NewTemplateRepository(ctx, store, zap.NewNop(), nil)
	templates, err = reloaded.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 4)
	assert.Equal(t, "세일 라벨", templates[0].Name)
}

func TestTemplateRepository_SetDefaultKeepsExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := newTestTemplateRepo(t, kv.NewMemoryStore())

	templates, err := repo.FindAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.SetDefault(ctx, templates[2].ID))

	templates, err = repo.FindAll(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, tpl := range templates {
		if tpl.IsDefault {
			defaults++
			assert.Equal(t, templates[2].ID, tpl.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestTemplateRepository_SetDefaultUnknownIDLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	repo := newTestTemplateRepo(t, kv.NewMemoryStore())

	err := repo.SetDefault(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	def, err := repo.FindDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "기본 라벨 (50x30)", def.Name)
}

func TestElementRepository_CopyTemplateAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	seed := defaultSeed()
	repo := NewElementRepository(ctx, kv.NewMemoryStore(), zap.NewNop(), seed.elements)

	var sourceID uuid.UUID
	for templateID := range seed.elements {
		sourceID = templateID
	}
	targetID := uuid.New()

	require.NoError(t, repo.CopyTemplate(ctx, sourceID, targetID))

	source, err := repo.FindByTemplate(ctx, sourceID)
	require.NoError(t, err)
	copied, err := repo.FindByTemplate(ctx, targetID)
	require.NoError(t, err)
	require.Len(t, copied, len(source))

	sourceIDs := make(map[uuid.UUID]bool)
	for _, el := range source {
		sourceIDs[el.ID] = true
	}
	for i, el := range copied {
		assert.False(t, sourceIDs[el.ID], "copied element reuses a source ID")
		assert.Equal(t, source[i].Type, el.Type)
		assert.Equal(t, source[i].X, el.X)
		assert.Equal(t, source[i].Y, el.Y)
	}
}

func TestElementRepository_SaveUpsertsAndDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewElementRepository(ctx, kv.NewMemoryStore(), zap.NewNop(), nil)

	templateID := uuid.New()
	bounds := labeling.BoundsForLabel(50, 30)
	el, err := labeling.NewLabelElement(labeling.ElementTypeText, "상품명", 4, 4, bounds)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, templateID, el))

	el.SetLabel("브랜드명")
	require.NoError(t, repo.Save(ctx, templateID, el))

	elements, err := repo.FindByTemplate(ctx, templateID)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "브랜드명", elements[0].Label)

	require.NoError(t, repo.Delete(ctx, el.ID))
	_, _, err = repo.FindByID(ctx, el.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestQueueRepository_RemoveReportsHowManyExisted(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(ctx, kv.NewMemoryStore(), zap.NewNop(), defaultSeed().queue)

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	removed, err := repo.Remove(ctx, []uuid.UUID{items[0].ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	items, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestQueueRepository_ClearEmptiesTheQueue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewQueueRepository(ctx, store, zap.NewNop(), defaultSeed().queue)

	require.NoError(t, repo.Clear(ctx))

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	reloaded := NewQueueRepository(ctx, store, zap.NewNop(), defaultSeed().queue)
	items, err = reloaded.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "cleared queue must not reseed")
}

func TestCodeFormatRepository_SavePersistsAdvancedSequence(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewCodeFormatRepository(ctx, store, zap.NewNop(), defaultSeed().codeFormats)

	formats, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, formats, 1)

	format := formats[0]
	format.Advance()
	format.Advance()
	require.NoError(t, repo.Save(ctx, &format))

	reloaded := NewCodeFormatRepository(ctx, store, zap.NewNop(), nil)
	stored, err := reloaded.FindByID(ctx, format.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.Seq)
}

func TestShipperRepository_SaveDoesNotAliasRuleSlices(t *testing.T) {
	ctx := context.Background()
	repo := NewShipperRepository(ctx, kv.NewMemoryStore(), zap.NewNop(), defaultSeed().shippers)

	shippers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, shippers)

	shipper := shippers[0]
	originalRules := len(shipper.BarcodeRules)
	shipper.BarcodeRules = append(shipper.BarcodeRules, labeling.BarcodeRule{ID: uuid.New()})

	stored, err := repo.FindByID(ctx, shipper.ID)
	require.NoError(t, err)
	assert.Len(t, stored.BarcodeRules, originalRules)
}

func TestCleanupRuleRepository_PreservesApplicationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCleanupRuleRepository(ctx, kv.NewMemoryStore(), zap.NewNop(), defaultSeed().cleanupRules)

	appended := labeling.NewCleanupRule("특가", "행사 문구 제거")
	require.NoError(t, repo.Append(ctx, appended))

	rules, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 4)
	assert.Equal(t, "[샘플]", rules[0].Keyword)
	assert.Equal(t, "특가", rules[3].Keyword)
}

func TestProductRepository_FindBySKU(t *testing.T) {
	repo := NewSeededProductRepository()

	product, err := repo.FindBySKU(context.Background(), "TS-001")
	require.NoError(t, err)
	assert.Equal(t, "[샘플] 면 반팔 티셔츠", product.Name)

	_, err = repo.FindBySKU(context.Background(), "NOPE")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
