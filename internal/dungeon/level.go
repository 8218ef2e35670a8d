package dungeon

import "github.com/vkotenko/tui-delver/internal/core"

// Level describes one dungeon arena as a string layout.
// '#' is a wall, anything else is floor. Rows may have uneven lengths;
// cells beyond a row's end are treated as walls.
type Level struct {
	Name   string
	Layout []string
}

// Levels contains all built-in arenas, in scenario order.
var Levels = []Level{
	{
		Name: "The Pit",
		Layout: []string{
			"########################################",
			"#......................................#",
			"#......................................#",
			"#......####................####........#",
			"#......#..#................#..#........#",
			"#......#..#................#..#........#",
			"#......####................####........#",
			"#......................................#",
			"#......................................#",
			"#..........########.########...........#",
			"#..........#................#..........#",
			"#..........#................#..........#",
			"#..........##################..........#",
			"#......................................#",
			"#......................................#",
			"########################################",
		},
	},
	{
		Name: "Crossroads",
		Layout: []string{
			"########################################",
			"#................##....................#",
			"#................##....................#",
			"#................##....................#",
			"#................##....................#",
			"######..####################..##########",
			"#......................................#",
			"#......................................#",
			"######..####################..##########",
			"#................##....................#",
			"#................##....................#",
			"#................##....................#",
			"#................##....................#",
			"########################################",
		},
	},
	{
		Name: "Broken Halls",
		Layout: []string{
			"########################################",
			"#.......#..............#...............#",
			"#.......#..............#...............#",
			"#.......#....######....#....######.....#",
			"#............#....#.........#..........#",
			"#............#....#.........#..........#",
			"#.......#....#.............##..........#",
			"#.......#....######....#....######.....#",
			"#.......#..............#...............#",
			"#..######..............#############...#",
			"#.......................#..............#",
			"#.......................#..............#",
			"########################################",
		},
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index, or nil if out of range.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// Width returns the widest row of the layout.
func (l *Level) Width() int {
	w := 0
	for _, row := range l.Layout {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of layout rows.
func (l *Level) Height() int {
	return len(l.Layout)
}

// IsWall reports whether the given point is a wall or outside the layout.
func (l *Level) IsWall(p core.Point) bool {
	if p.Y < 0 || p.Y >= len(l.Layout) {
		return true
	}
	row := l.Layout[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return true
	}
	return row[p.X] == '#'
}

// FloorCells returns every walkable cell of the layout.
func (l *Level) FloorCells() []core.Point {
	var cells []core.Point
	for y, row := range l.Layout {
		for x := range row {
			p := core.Point{X: x, Y: y}
			if !l.IsWall(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
