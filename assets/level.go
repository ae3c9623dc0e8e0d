package assets

// LevelMap encodes the demo level, one string per row. '#' marks a solid
// tile; everything else is empty space. Row 0 is the highest row.
var LevelMap = []string{
	"####################",
	"#..................#",
	"#.................##",
	"#..................#",
	"#...............#..#",
	"#...###........##..#",
	"#..................#",
	"#.........###......#",
	"#..................#",
	"#..................#",
	"####################",
}

// SolidTileCount returns the number of solid tiles in the map.
func SolidTileCount() int {
	count := 0
	for _, row := range LevelMap {
		for _, ch := range row {
			if ch == '#' {
				count++
			}
		}
	}
	return count
}
