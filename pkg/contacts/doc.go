// Package contacts reads contact rows from spreadsheet files.
//
// The first row of a sheet is the header. Every following row becomes a
// campaign.Row whose fields keep the column order, with these rules:
//
//   - empty cells are left out of the row
//   - rows without any non-empty cell are skipped
//   - an empty header cell is named "__EMPTY", then "__EMPTY_1", "__EMPTY_2" ...
//   - a repeated header name gets a numeric suffix: "Email", "Email_1" ...
//
// XLSX reads the first worksheet of an Excel workbook and CSV reads
// comma (or otherwise) separated text. Open picks one by file extension.
// Sources hold only a path and read the file again on every Rows call.
package contacts
