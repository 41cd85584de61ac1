// Package extract converts the order-management workbook into the flat CSV
// tables the search commands read.
//
// Each sheet listed in Sheets becomes <table>.csv in the output directory.
// Headers are normalized the same way the table package normalizes them
// on load and completely blank rows are dropped. On sheets read with a
// header row, blank header cells are named "Unnamed: <n>" and repeated
// names get a ".<k>" suffix; the tracking sheet keeps its header cells as
// they are.
package extract
