package persistence

import (
	"github.com/google/uuid"

	"github.com/sellerdesk/backend/internal/domain/labeling"
)

// seedData is the fixed dataset substituted for any aggregate whose
// stored document is absent or unreadable. Built once per process so
// cross-aggregate references (rules -> templates) line up on a fresh
// install.
type seedData struct {
	templates    []labeling.LabelTemplate
	elements     map[uuid.UUID][]labeling.LabelElement
	queue        []labeling.QueueItem
	cleanupRules []labeling.CleanupRule
	codeFormats  []labeling.CodeFormat
	shippers     []labeling.Shipper
}

func defaultSeed() *seedData {
	basic := mustTemplate("기본 라벨 (50x30)")
	basic.Description = "롤 용지 기본 바코드 라벨"
	basic.SetAsDefault()

	large := mustTemplate("대형 라벨 (100x50)")
	large.Description = "박스 부착용 대형 라벨"
	large.LabelWidth = 100
	large.LabelHeight = 50
	large.Columns = 1
	large.Rows = 1
	large.PaperType = labeling.PaperTypeDieCut

	sheet := mustTemplate("A4 라벨지 (3x8)")
	sheet.Description = "A4 라벨지 24칸"
	sheet.PaperType = labeling.PaperTypeSheetA4
	sheet.Rows = 8

	bounds := basic.Bounds()
	nameEl := mustElement(labeling.ElementTypeText, "상품명", 8, 8, bounds)
	barcodeEl := mustElement(labeling.ElementTypeBarcode, "", 8, 40, bounds)
	skuEl := mustElement(labeling.ElementTypeSKU, "SKU", 8, 88, bounds)

	queue := []labeling.QueueItem{
		*mustQueueItem("[샘플] 면 반팔 티셔츠", "면 반팔 티셔츠", "TS-001", basic.ID),
		*mustQueueItem("무료배송 캔버스 에코백", "캔버스 에코백", "BG-014", basic.ID),
		*mustQueueItem("(1+1) 스테인리스 텀블러", "스테인리스 텀블러", "TB-102", large.ID),
	}

	cleanupRules := []labeling.CleanupRule{
		*labeling.NewCleanupRule("[샘플]", "샘플 표기 제거"),
		*labeling.NewCleanupRule("무료배송", "배송 문구 제거"),
		*labeling.NewCleanupRule("(1+1)", "행사 문구 제거"),
	}

	format := mustCodeFormat("입고 라벨 코드", "{DATE:yyMMdd}-{SKU}-{SEQ:4}")

	smartstore := mustShipper("스마트스토어", "SST")
	coupang := mustShipper("쿠팡", "CPG")
	coupangRule := mustRule(coupang.ID, large.ID, 1, []labeling.BarcodeCondition{
		{Field: "category", Operator: labeling.OperatorIn, Values: []string{"박스", "대형"}},
	})
	coupangCatchAll := mustRule(coupang.ID, basic.ID, 9, nil)
	coupang.AddRule(*coupangRule)
	coupang.AddRule(*coupangCatchAll)
	smartstoreRule := mustRule(smartstore.ID, basic.ID, 1, nil)
	smartstore.AddRule(*smartstoreRule)

	return &seedData{
		templates: []labeling.LabelTemplate{*basic, *large, *sheet},
		elements: map[uuid.UUID][]labeling.LabelElement{
			basic.ID: {*nameEl, *barcodeEl, *skuEl},
		},
		queue:        queue,
		cleanupRules: cleanupRules,
		codeFormats:  []labeling.CodeFormat{*format},
		shippers:     []labeling.Shipper{*smartstore, *coupang},
	}
}

// Seed construction only fails on programmer error in the fixed dataset.

func mustTemplate(name string) *labeling.LabelTemplate {
	t, err := labeling.NewLabelTemplate(name)
	mustSeed(err)
	return t
}

func mustElement(et labeling.ElementType, label string, x, y int, bounds labeling.Bounds) *labeling.LabelElement {
	e, err := labeling.NewLabelElement(et, label, x, y, bounds)
	mustSeed(err)
	return e
}

func mustQueueItem(name, sanitized, sku string, templateID uuid.UUID) *labeling.QueueItem {
	q, err := labeling.NewQueueItem(name, sanitized, sku, templateID)
	mustSeed(err)
	return q
}

func mustCodeFormat(name, pattern string) *labeling.CodeFormat {
	f, err := labeling.NewCodeFormat(name, pattern)
	mustSeed(err)
	return f
}

func mustShipper(name, code string) *labeling.Shipper {
	s, err := labeling.NewShipper(name, code)
	mustSeed(err)
	return s
}

func mustRule(shipperID, templateID uuid.UUID, priority int, conditions []labeling.BarcodeCondition) *labeling.BarcodeRule {
	r, err := labeling.NewBarcodeRule(shipperID, templateID, priority, conditions)
	mustSeed(err)
	return r
}

func mustSeed(err error) {
	if err != nil {
		panic("invalid seed data: " + err.Error())
	}
}
