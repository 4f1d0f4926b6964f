package tables

// DefaultRarity returns the built-in English rarity table. Lower weights mean
// more frequent letters.
func DefaultRarity() RarityTable {
	return RarityTable{
		'A': 1, 'B': 4, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 3, 'H': 2, 'I': 1,
		'J': 8, 'K': 5, 'L': 2, 'M': 3, 'N': 2, 'O': 1, 'P': 3, 'Q': 9, 'R': 1,
		'S': 1, 'T': 1, 'U': 2, 'V': 5, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
	}
}

// DefaultConfusion returns the built-in confusion table assessed for
// Roboto Light glyph overlays.
func DefaultConfusion() ConfusionTable {
	return ConfusionTable{
		pairKey('E', 'F'): 3,
		pairKey('I', 'L'): 2,
		pairKey('O', 'Q'): 4,
		pairKey('P', 'R'): 3,
		pairKey('C', 'G'): 2,
		pairKey('M', 'N'): 1,
		pairKey('V', 'W'): 2,
	}
}
