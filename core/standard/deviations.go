package standard

import "strings"

// deviationCodes are the 28 fundamental-deviation letters, in table order.
// Lower case throughout; the shaft table order matches the hole one.
var deviationCodes = []string{
	"a", "b", "c", "cd", "d", "e", "ef", "f", "fg", "g", "h", "js", "j",
	"k", "m", "n", "p", "r", "s", "t", "u", "v", "x", "y", "z", "za",
	"zb", "zc",
}

// HoleDeviations returns the hole deviation codes (upper case).
func HoleDeviations() []string {
	out := make([]string, len(deviationCodes))
	for i, d := range deviationCodes {
		out[i] = strings.ToUpper(d)
	}
	return out
}

// ShaftDeviations returns the shaft deviation codes (lower case).
func ShaftDeviations() []string {
	out := make([]string, len(deviationCodes))
	copy(out, deviationCodes)
	return out
}

// DeviationIndex resolves a deviation letter, case-insensitively, to its
// 1-based column index. Hole and shaft conventions share the same indices.
func DeviationIndex(letter string) (int, bool) {
	for i, d := range deviationCodes {
		if strings.EqualFold(d, letter) {
			return i + 1, true
		}
	}
	return 0, false
}

// Column indices shared by the deviation tables. Values follow the order
// of deviationCodes, offset by one for the size column.
const (
	ColA  = 1
	ColB  = 2
	ColG  = 10
	ColH  = 11
	ColJS = 12
	ColJ  = 13
	ColK  = 14
	ColM  = 15
	ColN  = 16
	ColP  = 17
	ColZC = 28
)

// deviationsAG holds fundamental deviations for letters a-g.
// Column 0 is the size-band upper bound in mm; columns 1-10 are the
// magnitudes for a, b, c, cd, d, e, ef, f, fg, g in micrometres. The sign
// is applied by the resolver (negative EI for holes becomes positive ES
// on mirroring). Banding is finer than the IT table below 500 mm.
var deviationsAG = [][]int{
	{3, 270, 140, 60, 34, 20, 14, 10, 6, 4, 2},
	{6, 270, 140, 70, 46, 30, 20, 14, 10, 6, 4},
	{10, 280, 150, 80, 56, 40, 25, 18, 13, 8, 5},
	{18, 290, 150, 95, 70, 50, 32, 23, 16, 10, 6},
	{30, 300, 160, 110, 85, 65, 40, 28, 20, 12, 7},
	{40, 310, 170, 120, 100, 80, 50, 35, 25, 15, 9},
	{50, 320, 180, 130, 100, 80, 50, 35, 25, 15, 9},
	{65, 340, 190, 140, -1, 100, 60, -1, 30, -1, 10},
	{80, 360, 200, 150, -1, 100, 60, -1, 30, -1, 10},
	{100, 380, 220, 170, -1, 120, 72, -1, 36, -1, 12},
	{120, 410, 240, 180, -1, 120, 72, -1, 36, -1, 12},
	{140, 460, 260, 200, -1, 145, 85, -1, 43, -1, 14},
	{160, 520, 280, 210, -1, 145, 85, -1, 43, -1, 14},
	{180, 580, 310, 230, -1, 145, 85, -1, 43, -1, 14},
	{200, 660, 340, 240, -1, 170, 100, -1, 50, -1, 15},
	{225, 740, 380, 260, -1, 170, 100, -1, 50, -1, 15},
	{250, 820, 420, 280, -1, 170, 100, -1, 50, -1, 15},
	{280, 920, 480, 300, -1, 190, 110, -1, 56, -1, 17},
	{315, 1_050, 540, 330, -1, 190, 110, -1, 56, -1, 17},
	{355, 1_200, 600, 360, -1, 210, 125, -1, 62, -1, 18},
	{400, 1_350, 680, 400, -1, 210, 125, -1, 62, -1, 18},
	{450, 1_500, 760, 440, -1, 230, 135, -1, 68, -1, 20},
	{500, 1_650, 840, 480, -1, 230, 135, -1, 68, -1, 20},
	{630, -1, -1, -1, -1, 260, 145, -1, 76, -1, 22},
	{800, -1, -1, -1, -1, 290, 160, -1, 80, -1, 24},
	{1_000, -1, -1, -1, -1, 320, 170, -1, 86, -1, 26},
	{1_250, -1, -1, -1, -1, 350, 195, -1, 98, -1, 28},
	{1_600, -1, -1, -1, -1, 390, 220, -1, 110, -1, 30},
	{2_000, -1, -1, -1, -1, 430, 240, -1, 120, -1, 32},
	{2_500, -1, -1, -1, -1, 480, 260, -1, 130, -1, 34},
	{3_150, -1, -1, -1, -1, 520, 290, -1, 145, -1, 38},
}

// DeviationAG returns the a-g deviation magnitude in micrometres for a
// lookup size and deviation column (ColA..ColG).
func DeviationAG(size, devCol int) (int, bool) {
	row, ok := bandRow(deviationsAG, size)
	if !ok {
		return 0, false
	}
	if devCol < ColA || devCol > ColG {
		return 0, false
	}
	v := deviationsAG[row][devCol]
	if v == Sentinel {
		return 0, false
	}
	return v, true
}

// upperJ holds the ES values for hole deviation J, defined for IT6-IT8
// only. Column 0 is the size-band upper bound; columns 1-3 are J6, J7, J8
// in micrometres.
var upperJ = [][]int{
	{3, 2, 4, 6},
	{6, 5, 6, 10},
	{10, 5, 8, 12},
	{18, 6, 10, 15},
	{30, 8, 12, 20},
	{50, 10, 14, 24},
	{80, 13, 18, 28},
	{120, 16, 22, 34},
	{180, 18, 26, 41},
	{250, 22, 30, 47},
	{315, 25, 36, 55},
	{400, 29, 39, 60},
	{500, 33, 43, 66},
}

// UpperJ returns the hole-J upper deviation in micrometres for a lookup
// size and grade column (grade columns 8-10, i.e. IT6-IT8).
func UpperJ(size, gradeCol int) (int, bool) {
	row, ok := bandRow(upperJ, size)
	if !ok {
		return 0, false
	}
	col := gradeCol - 7
	if col < 1 || col > 3 {
		return 0, false
	}
	return upperJ[row][col], true
}

// lowerJ holds the |EI| magnitudes for shaft deviation j. Column 0 is the
// size-band upper bound; columns 1-3 cover j5/j6 (shared), j7 and j8, in
// micrometres.
var lowerJ = [][]int{
	{3, 2, 4, 6},
	{6, 2, 4, 10},
	{10, 2, 5, 12},
	{18, 3, 6, 15},
	{30, 4, 8, 20},
	{50, 5, 10, 24},
	{80, 7, 12, 28},
	{120, 9, 15, 34},
	{180, 11, 18, 41},
	{250, 13, 21, 47},
	{315, 16, 26, 55},
	{400, 18, 28, 60},
	{500, 20, 32, 66},
}

// LowerJ returns the shaft-j lower-deviation magnitude in micrometres for
// a lookup size and grade column (grade columns 7-10, i.e. IT5-IT8; IT5
// shares the IT6 column).
func LowerJ(size, gradeCol int) (int, bool) {
	row, ok := bandRow(lowerJ, size)
	if !ok {
		return 0, false
	}
	if gradeCol < 7 || gradeCol > 10 {
		return 0, false
	}
	col := gradeCol - 7
	if col < 1 {
		col = 1
	}
	return lowerJ[row][col], true
}

// deviationsKZC holds the shared magnitude table for letters k-zc.
// Column 0 is the size-band upper bound in mm; columns 1-15 are the shaft
// lower deviations for k, m, n, p, r, s, t, u, v, x, y, z, za, zb, zc in
// micrometres. Holes mirror these with opposite sign plus the Delta
// correction. Banding is fine below 500 mm and coarse above, where only
// k-u remain defined.
var deviationsKZC = [][]int{
	{3, 0, 2, 4, 6, 10, 14, -1, 18, -1, 20, -1, 26, 32, 40, 60},
	{6, 1, 4, 8, 12, 15, 19, -1, 23, -1, 28, -1, 35, 42, 50, 80},
	{10, 1, 6, 10, 15, 19, 23, -1, 28, -1, 34, -1, 42, 52, 67, 97},
	{14, 1, 7, 12, 18, 23, 28, -1, 33, -1, 40, -1, 50, 64, 90, 130},
	{18, 1, 7, 12, 18, 23, 28, -1, 33, 39, 45, -1, 60, 77, 108, 150},
	{24, 2, 8, 15, 22, 28, 35, -1, 41, 47, 54, 63, 73, 98, 136, 188},
	{30, 2, 8, 15, 22, 28, 35, 41, 48, 55, 64, 75, 88, 118, 160, 218},
	{40, 2, 9, 17, 26, 34, 43, 48, 60, 68, 80, 94, 112, 148, 200, 274},
	{50, 2, 9, 17, 26, 34, 43, 54, 70, 81, 97, 114, 136, 180, 242, 325},
	{65, 2, 11, 20, 32, 41, 53, 66, 87, 102, 122, 144, 172, 226, 300, 405},
	{80, 2, 11, 20, 32, 43, 59, 75, 102, 120, 146, 174, 210, 274, 360, 480},
	{100, 3, 13, 23, 37, 51, 71, 91, 124, 146, 178, 214, 258, 335, 445, 585},
	{120, 3, 13, 23, 37, 54, 79, 104, 144, 172, 210, 254, 310, 400, 525, 690},
	{140, 3, 15, 27, 43, 63, 92, 122, 170, 202, 248, 300, 365, 470, 620, 800},
	{160, 3, 15, 27, 43, 65, 100, 134, 190, 228, 280, 340, 415, 535, 700, 900},
	{180, 3, 15, 27, 43, 68, 108, 146, 210, 252, 310, 380, 465, 600, 780, 1_000},
	{200, 4, 17, 31, 50, 77, 122, 166, 236, 284, 350, 425, 520, 670, 880, 1_150},
	{225, 4, 17, 31, 50, 80, 130, 180, 258, 310, 385, 470, 575, 740, 960, 1_250},
	{250, 4, 17, 31, 50, 84, 140, 196, 284, 340, 425, 520, 640, 820, 1_050, 1_350},
	{280, 4, 20, 34, 56, 94, 158, 218, 315, 385, 475, 580, 710, 920, 1_200, 1_550},
	{315, 4, 20, 34, 56, 98, 170, 240, 350, 425, 525, 650, 790, 1_000, 1_300, 1_700},
	{355, 4, 21, 37, 62, 108, 190, 268, 390, 475, 590, 730, 900, 1_150, 1_500, 1_900},
	{400, 4, 21, 37, 62, 114, 208, 294, 435, 530, 660, 820, 1_000, 1_300, 1_650, 2_100},
	{450, 5, 23, 40, 68, 126, 232, 330, 490, 595, 740, 920, 1_100, 1_450, 1_850, 2_400},
	{500, 5, 23, 40, 68, 132, 252, 360, 540, 660, 820, 1_000, 1_250, 1_600, 2_100, 2_600},
	{630, 0, 26, 44, 78, 155, 310, 450, 660, -1, -1, -1, -1, -1, -1, -1},
	{800, 0, 30, 50, 88, 185, 380, 560, 840, -1, -1, -1, -1, -1, -1, -1},
	{1_000, 0, 34, 56, 100, 220, 470, 680, 1_050, -1, -1, -1, -1, -1, -1, -1},
	{1_250, 0, 40, 66, 120, 260, 580, 840, 1_300, -1, -1, -1, -1, -1, -1, -1},
	{1_600, 0, 48, 78, 140, 330, 720, 1_050, 1_600, -1, -1, -1, -1, -1, -1, -1},
	{2_000, 0, 58, 92, 170, 400, 920, 1_350, 2_000, -1, -1, -1, -1, -1, -1, -1},
	{2_500, 0, 68, 110, 195, 460, 1_100, 1_650, 2_500, -1, -1, -1, -1, -1, -1, -1},
	{3_150, 0, 76, 135, 240, 580, 1_400, 2_100, 3_200, -1, -1, -1, -1, -1, -1, -1},
}

// KZC returns the k-zc magnitude in micrometres for a lookup size and
// deviation column (ColK..ColZC).
func KZC(size, devCol int) (int, bool) {
	row, ok := bandRow(deviationsKZC, size)
	if !ok {
		return 0, false
	}
	if devCol < ColK || devCol > ColZC {
		return 0, false
	}
	v := deviationsKZC[row][devCol-ColK+1]
	if v == Sentinel {
		return 0, false
	}
	return v, true
}
