// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

// Table names. Each is stored as <name>.csv in the data directory.
const (
	TableSuppliers    = "suppliers"
	TableProducts     = "products"
	TableCaseNumbers  = "case_numbers"
	TableCredit       = "credit"
	TableCaseDetails  = "case_details"
	TableCaseTracking = "case_tracking"
	TableInputRules   = "input_rules"
)

// AllTables lists every table produced by extraction, in workbook order.
var AllTables = []string{
	TableSuppliers,
	TableProducts,
	TableCaseNumbers,
	TableCredit,
	TableCaseDetails,
	TableCaseTracking,
	TableInputRules,
}

// Column names shared by more than one table.
const (
	ColCaseNumber = "案件番号"
	ColCustomer   = "顧客名"
	ColSupplier   = "仕入先"
	ColProductID  = "商品ID"
	ColUnit       = "単位"
)

// Product columns.
const (
	ColSerialID      = "商品連番"
	ColMajorCategory = "大分類"
	ColMinorCategory = "小分類"
	ColProductName   = "商品名"
	ColFeatures      = "商品特徴"
	ColBarcode       = "JANコード"
	ColNotes         = "申し送り"
	ColCapacity      = "容量"
	ColUnitCost      = "仕入単価"
	ColDomesticPrice = "国内定価（15％）"
	ColOverseasPrice = "海外定価（20％）"
	ColTemperature   = "温度帯"
	ColShelfLife     = "賞味期限"
	ColListable      = "EEZO掲載可否"
)

// Case tracking columns.
const (
	ColMerchandise  = "商材"
	ColAssignee     = "担当"
	ColPaymentTerms = "支払い条件"
	ColQuoted       = "見積"
	ColOrdered      = "受注"
	ColPurchased    = "発注"
	ColShipped      = "出荷"
	ColArrived      = "着荷"
	ColRecognized   = "売上計上"
	ColPaid         = "売上入金"
)

// Case detail, case number and credit columns.
const (
	ColLineNo      = "No"
	ColCostPrice   = "仕入価格"
	ColSalesPrice  = "販売価格（売値）"
	ColQuantity    = "数量"
	ColTaxRate     = "税率"
	ColPerson      = "担当者"
	ColCreditClass = "区分"
	ColAgency      = "調査機関"
	ColRating      = "評点/格付"
	ColCreditLimit = "与信限度額"
	ColReceivable  = "現在売掛残高"
	ColRemaining   = "残与信枠"
	ColCreditTerms = "支払条件"
)

// Product is a row of the product master.
// Fields whose column is missing from the loaded schema decode as "".
type Product struct {
	SerialID      string `col:"商品連番"`
	MajorCategory string `col:"大分類"`
	MinorCategory string `col:"小分類"`
	Supplier      string `col:"仕入先"`
	Name          string `col:"商品名"`
	Features      string `col:"商品特徴"`
	Barcode       string `col:"JANコード"`
	Notes         string `col:"申し送り,contains"`
}

// CaseTracking is the pipeline row of a single case.
type CaseTracking struct {
	CaseNumber   string `col:"案件番号"`
	Customer     string `col:"顧客名"`
	Supplier     string `col:"仕入先"`
	Merchandise  string `col:"商材"`
	Assignee     string `col:"担当"`
	PaymentTerms string `col:"支払い条件"`
	Quoted       string `col:"見積"`
	Ordered      string `col:"受注"`
	Purchased    string `col:"発注"`
	Shipped      string `col:"出荷"`
	Arrived      string `col:"着荷"`
	Recognized   string `col:"売上計上"`
	Paid         string `col:"売上入金"`
}

// CaseNumber is an entry of the case numbering sheet.
type CaseNumber struct {
	CaseNumber string `col:"案件番号"`
	Person     string `col:"担当者"`
}

// Credit holds the credit standing of a customer.
type Credit struct {
	Customer    string `col:"顧客名"`
	Class       string `col:"区分"`
	Agency      string `col:"調査機関"`
	Rating      string `col:"評点/格付"`
	Limit       string `col:"与信限度額"`
	Receivable  string `col:"現在売掛残高"`
	Remaining   string `col:"残与信枠"`
	PaymentTerm string `col:"支払条件"`
}
