package format

import "github.com/poiesic/ledger/core"

// Display columns per view. Columns missing from a table are skipped.
var (
	productColumns = []string{
		core.ColSerialID,
		core.ColMajorCategory,
		core.ColMinorCategory,
		core.ColSupplier,
		core.ColProductName,
		core.ColUnit,
		core.ColCapacity,
		core.ColUnitCost,
		core.ColDomesticPrice,
		core.ColOverseasPrice,
		core.ColTemperature,
		core.ColShelfLife,
		core.ColListable,
	}

	trackingColumns = []string{
		core.ColCaseNumber,
		core.ColCustomer,
		core.ColSupplier,
		core.ColMerchandise,
		core.ColAssignee,
		core.ColPaymentTerms,
		core.ColQuoted,
		core.ColOrdered,
		core.ColPurchased,
		core.ColShipped,
		core.ColArrived,
		core.ColRecognized,
		core.ColPaid,
	}

	caseLineColumns = []string{
		core.ColCaseNumber,
		core.ColCustomer,
		core.ColProductID,
		core.ColSupplier,
		core.ColProductName,
		core.ColCostPrice,
		core.ColSalesPrice,
		core.ColQuantity,
		core.ColUnit,
	}

	// lookupLineColumns omit the case number and customer, which the
	// tracking block above them already shows.
	lookupLineColumns = []string{
		core.ColLineNo,
		core.ColProductID,
		core.ColSupplier,
		core.ColProductName,
		core.ColCostPrice,
		core.ColSalesPrice,
		core.ColQuantity,
		core.ColUnit,
		core.ColTaxRate,
	}
)

// tableLabels name the tables in the summary.
var tableLabels = map[string]string{
	core.TableProducts:     "商品",
	core.TableSuppliers:    "仕入先",
	core.TableCaseNumbers:  "案件",
	core.TableCaseDetails:  "明細行",
	core.TableCaseTracking: "追跡案件",
	core.TableCredit:       "与信顧客",
}

// Messages for searches that matched nothing.
const (
	NoProducts  = "該当なし: 商品"
	NoCases     = "該当なし: 案件"
	NoSuppliers = "該当なし: 仕入先"
	NoCredit    = "該当なし: 与信情報"
)
