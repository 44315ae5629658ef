package standard

// delta holds the Δ correction applied when mirroring k-zc shaft
// deviations into hole deviations at fine grades. Column 0 is the
// size-band upper bound in mm; columns 1-6 carry the printed Δ values
// for IT3-IT8 in tenths of a micrometre. Delta consults IT3-IT7 only:
// the correction is zero at IT8 and above, below IT3, and above 500 mm,
// so the IT8 column stays in the data for completeness but is never
// read.
var delta = [][]int{
	{3, 0, 0, 0, 0, 0, 0},
	{6, 10, 15, 10, 30, 40, 60},
	{10, 10, 15, 20, 30, 60, 70},
	{18, 10, 20, 30, 30, 70, 90},
	{30, 15, 20, 30, 40, 80, 120},
	{50, 15, 30, 40, 50, 90, 140},
	{80, 20, 30, 50, 60, 110, 160},
	{120, 20, 40, 50, 70, 130, 190},
	{180, 30, 40, 60, 70, 150, 230},
	{250, 30, 40, 60, 90, 170, 260},
	{315, 40, 40, 70, 90, 200, 290},
	{400, 40, 50, 70, 110, 210, 320},
	{500, 50, 50, 70, 130, 230, 340},
}

// Delta returns the Δ correction in tenths of a micrometre for a lookup
// size and grade column. Outside grade columns 5-9 (IT3-IT7) or above
// 500 mm the correction is zero.
func Delta(size, gradeCol int) int {
	if size > 500 || gradeCol < 5 || gradeCol > 9 {
		return 0
	}
	row, ok := bandRow(delta, size)
	if !ok {
		return 0
	}
	return delta[row][gradeCol-4]
}
