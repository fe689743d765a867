package index

import "collection-manager/core/catalog"

// Wildcard values for Key components.
const (
	AnySet          = ""
	AnyNumber       = ""
	AnyArtist       = ""
	AnyMultiverseID = 0
)

// Key is a composite (set, name, number, multiverse id, artist) lookup key.
// The zero value of every component except Name is a wildcard.
type Key struct {
	Set          string
	Name         string
	Number       string
	MultiverseID int
	Artist       string
}

type nameNumber struct {
	name   string
	number string
}

// faceSuffixes label faces of multi-faced printings by position.
const faceSuffixes = "abcdefghijklmnopqrstuvwxyz"

// nameNumberVariants returns the (name, number) pairs a printing can be referred to by:
// its full name with its number, every face name with the shared number, and every
// face from the second one onward with a positional letter appended to the number.
// Each pair is followed by a wildcard-number variant.
func nameNumberVariants(card *catalog.Card) []nameNumber {
	pairs := []nameNumber{{card.Name, card.CollectorNumber}}
	for i, face := range card.Faces {
		if face.Name == "" {
			continue
		}
		pairs = append(pairs, nameNumber{face.Name, card.CollectorNumber})
		if i > 0 && i < len(faceSuffixes) {
			pairs = append(pairs, nameNumber{face.Name, card.CollectorNumber + string(faceSuffixes[i])})
		}
	}

	out := make([]nameNumber, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p, nameNumber{p.name, AnyNumber})
	}
	return out
}

// compositeKeys returns the cross product of name/number, set, multiverse id and
// artist variants for card. Duplicates are possible and harmless.
func compositeKeys(card *catalog.Card) []Key {
	sets := []string{card.Set, AnySet}
	mvids := append([]int{AnyMultiverseID}, card.MultiverseIDs...)
	artists := []string{card.Artist, AnyArtist}

	nns := nameNumberVariants(card)
	keys := make([]Key, 0, len(nns)*len(sets)*len(mvids)*len(artists))
	for _, nn := range nns {
		for _, set := range sets {
			for _, mvid := range mvids {
				for _, artist := range artists {
					keys = append(keys, Key{
						Set:          set,
						Name:         nn.name,
						Number:       nn.number,
						MultiverseID: mvid,
						Artist:       artist,
					})
				}
			}
		}
	}
	return keys
}
