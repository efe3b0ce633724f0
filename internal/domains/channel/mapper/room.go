package mapper

import (
	"slices"
	"strings"
	"unicode"

	channelModel "staysync/internal/domains/channel/model"
	roomModel "staysync/internal/domains/room/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Room categories known to the PMS.
const (
	CategoryStandard = "standard"
	CategoryDeluxe   = "deluxe"
	CategorySuite    = "suite"
	CategoryFamily   = "family"
	CategoryDorm     = "dorm"
)

// dormWords mark a category as a dormitory wherever they appear in it, as in "Dorm Room" or
// "shared_dorm".
var dormWords = map[string]bool{
	"dorm":        true,
	"dorms":       true,
	"dormitory":   true,
	"dormitories": true,
	"hostel":      true,
	"bunk":        true,
	"bunks":       true,
}

// dormCategories are dormitories only as the whole category. "Double with shared bathroom" is not.
var dormCategories = map[string]bool{
	"shared": true,
}

// categoryByPrefix is a legacy numbering convention, used only when a room has no category.
var categoryByPrefix = map[byte]string{
	'1': CategoryStandard,
	'2': CategoryDeluxe,
	'3': CategorySuite,
	'4': CategoryFamily,
	'9': CategoryDorm,
}

// RoomKindOf returns "dorm" for dormitory categories and "room" for everything else.
func RoomKindOf(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if dormCategories[category] {
		return channelModel.RoomKindDorm
	}

	words := strings.FieldsFunc(category, func(r rune) bool { return !unicode.IsLetter(r) })
	if slices.ContainsFunc(words, func(word string) bool { return dormWords[word] }) {
		return channelModel.RoomKindDorm
	}

	return channelModel.RoomKindRoom
}

// CategoryFromRoomNumber guesses a category from the first digit of the room number.
func CategoryFromRoomNumber(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return CategoryStandard
	}

	if category, ok := categoryByPrefix[number[0]]; ok {
		return category
	}

	return CategoryStandard
}

// CategoryOf returns the explicit category of a room, falling back to its number.
func CategoryOf(room roomModel.Room) string {
	if category := strings.ToLower(strings.TrimSpace(room.Category)); category != "" {
		return category
	}

	return CategoryFromRoomNumber(room.Number)
}

// CategoryTitle is the title a category is published under before normalization.
func CategoryTitle(category string) string {
	category = strings.TrimSpace(strings.ReplaceAll(category, "_", " "))

	return cases.Title(language.English).String(category)
}

// RoomTypeFor builds the external room type of a category from its sellable rooms.
func RoomTypeFor(category string, rooms []roomModel.Room, propertyID string) channelModel.RoomType {
	capacity := 1

	for _, room := range rooms {
		capacity = max(capacity, room.Capacity)
	}

	return channelModel.RoomType{
		PropertyID:       propertyID,
		Title:            NormalizeTitle(CategoryTitle(category)),
		RoomKind:         RoomKindOf(category),
		CountOfRooms:     max(len(rooms), 1),
		OccAdults:        capacity,
		OccChildren:      0,
		OccInfants:       0,
		DefaultOccupancy: capacity,
	}
}

// RatePlanFor builds the single per-room rate plan of an external room type.
func RatePlanFor(propertyID, roomTypeID, title, currency string, nightlyRate int64, occupancy int) channelModel.RatePlan {
	return channelModel.RatePlan{
		PropertyID: propertyID,
		RoomTypeID: roomTypeID,
		Title:      NormalizeTitle(title + " Standard Rate"),
		Currency:   currency,
		SellMode:   channelModel.SellModePerRoom,
		RateMode:   channelModel.RateModeManual,
		Options: []channelModel.RatePlanOption{
			{Occupancy: max(occupancy, 1), IsPrimary: true, Rate: channelModel.Money(nightlyRate)},
		},
	}
}
