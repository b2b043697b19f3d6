package validation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Allow-lists for the enumerated fields. Loaded once at startup and never
// mutated; message order follows declaration order.
var (
	ValidAffinities = []string{"Light", "Shadow"}

	ValidRarities = []int{2, 3, 4, 5}

	ValidElements = []string{
		"None", "Fire", "Earth", "Wind", "Water", "Thunder", "Shade", "Crystal",
	}

	ValidPersonalities = []string{
		"Beast",
		"Blacksmith",
		"Cat Lover",
		"Clergy",
		"Cooking",
		"Dragon Palace",
		"Eastern",
		"Elf",
		"Glasses",
		"Guiding Light",
		"IDA School",
		"Luring Shadow",
		"Mask",
		"Miglance Palace",
		"Minstrel",
		"New Radical Dreamers",
		"New Time Drift",
		"Phantom Thieves of Hearts",
		"Protagonist",
		"Scientist",
		"Sweet tooth",
		"Synth Human",
		"Alchemist",
		"Amnesia",
		"Animal Talker",
		"Art",
		"Avenger",
		"Baruoki",
		"Bind",
		"Bookworm",
		"Cat Hater",
		"Childhood Friend",
		"Chronos Empire",
		"COA",
		"Concerto Artes",
		"Cursed",
		"Dog lover",
		"Dragon",
		"Dragon Killer",
		"Dwarf",
		"Fairy",
		"Fishman",
		"Fleareth",
		"Forager",
		"Funeral",
		"Geo",
		"Glutton",
		"Gun",
		"Hood",
		"Itto-Ryu",
		"KMS",
		"Lost Laboratory",
		"Lovesick",
		"Machinery",
		"Military",
		"Miner",
		"Mounted",
		"Napper",
		"Nicknamer",
		"Ninja",
		"Northern",
		"Outlaw",
		"Power to Rule",
		"Purgatory",
		"Royalty",
		"Scallywag",
		"Scars of the Wheel of Time",
		"Sharp Ears",
		"Shield",
		"Spicy Lover",
		"Spirit Talker",
		"Spirit-fused",
		"Straw Dummy",
		"Tales of",
		"Titan",
		"Weapons",
		"West",
		"Woodcutter",
		"Zoology",
		"Staff",
		"Sword",
		"Katana",
		"Ax",
		"Lance",
		"Bow",
		"Fists",
		"Hammer",
	}
)

func invalidEnum(field string, allowed []string) *Error {
	return BadRequest(fmt.Sprintf("Invalid %s. Allowed values are %s", field, strings.Join(allowed, ", ")))
}

// CheckAffinity rejects affinity values outside the allow-list.
func CheckAffinity(affinity string) *Error {
	if !slices.Contains(ValidAffinities, affinity) {
		return invalidEnum("affinity", ValidAffinities)
	}
	return nil
}

// CheckRarity rejects rarity tiers outside the allow-list.
func CheckRarity(rarity int) *Error {
	if !slices.Contains(ValidRarities, rarity) {
		allowed := make([]string, len(ValidRarities))
		for i, r := range ValidRarities {
			allowed[i] = strconv.Itoa(r)
		}
		return invalidEnum("rarity", allowed)
	}
	return nil
}

// CheckElement rejects element values outside the allow-list.
func CheckElement(element string) *Error {
	if !slices.Contains(ValidElements, element) {
		return invalidEnum("element", ValidElements)
	}
	return nil
}

// CheckPersonality rejects personality values outside the allow-list.
func CheckPersonality(personality string) *Error {
	if !slices.Contains(ValidPersonalities, personality) {
		return invalidEnum("personality", ValidPersonalities)
	}
	return nil
}
