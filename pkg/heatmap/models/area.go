package models

// Area represents cell coordinate bounds within a sheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ContainsRow reports whether the 1-based row lies within the area.
func (a Area) ContainsRow(r int) bool {
	return r >= a.R1 && r <= a.R2
}

// ContainsCol reports whether the 1-based column lies within the area.
func (a Area) ContainsCol(c int) bool {
	return c >= a.C1 && c <= a.C2
}
