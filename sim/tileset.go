package sim

// Tile code tables, one per tileset. Code 0 and unmapped codes are empty.
var tilesets = map[int]map[int]Kind{
	0: {
		1:  KindWall,
		2:  KindWater,
		3:  KindThorns,
		4:  KindGem,
		5:  KindGemLife,
		6:  KindSnake,
		7:  KindPtero,
		8:  KindPlant,
		9:  KindSpit,
		10: KindMushroom,
		11: KindTree,
		12: KindFlower,
		13: KindFrog,
	},
	1: {
		1: KindWall,
		2: KindWater,
		3: KindThorns,
		4: KindGem,
		5: KindGemLife,
		6: KindIce,
		7: KindThinIce,
		8: KindMammoth,
		9: KindYeti,
	},
}

// KindFor maps a tile code to a kind for the given tileset.
func KindFor(tileset, code int) Kind {
	table, ok := tilesets[tileset]
	if !ok {
		return KindNone
	}
	return table[code]
}

// CodeFor is the inverse of KindFor. ok is false when the tileset has no
// code for kind.
func CodeFor(tileset int, kind Kind) (code int, ok bool) {
	for c, k := range tilesets[tileset] {
		if k == kind {
			return c, true
		}
	}
	return 0, false
}

// KnownTileset reports whether a tileset table exists.
func KnownTileset(tileset int) bool {
	_, ok := tilesets[tileset]
	return ok
}

func newEntity(kind Kind, col, row, tileset int) Entity {
	switch kind {
	case KindWall:
		return newWall(col, row, tileset)
	case KindWater:
		return newWater(col, row)
	case KindThorns:
		return newThorns(col, row, tileset)
	case KindIce:
		return newIce(col, row)
	case KindThinIce:
		return newThinIce(col, row)
	case KindTree, KindFlower:
		return newScenery(kind, col, row)
	case KindSnake:
		return newSnake(col, row)
	case KindPtero:
		return newPtero(col, row)
	case KindFrog:
		return newFrog(col, row)
	case KindPlant:
		return newPlant(col, row)
	case KindSpit:
		return newSpit(col, row)
	case KindYeti:
		return newYeti(col, row)
	case KindMushroom:
		return newMushroom(col, row)
	case KindGem, KindGemLife:
		return newGem(kind, col, row)
	case KindMammoth:
		return newMammoth(col, row)
	}
	return nil
}
