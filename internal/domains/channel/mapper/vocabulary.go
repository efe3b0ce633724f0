package mapper

import (
	"strings"

	bookingModel "staysync/internal/domains/booking/model"
	channelModel "staysync/internal/domains/channel/model"
)

// Partner display names used by the channel manager.
const (
	PartnerBookingCom = "Booking.com"
	PartnerAirbnb     = "Airbnb"
	PartnerAgoda      = "Agoda"
	PartnerExpedia    = "Expedia"
	PartnerDirect     = "Direct"
	PartnerOther      = "Other"
)

var statusToExternal = map[string]string{
	bookingModel.StatusPending:    channelModel.StatusNew,
	bookingModel.StatusConfirmed:  channelModel.StatusConfirmed,
	bookingModel.StatusCheckedIn:  channelModel.StatusCheckedIn,
	bookingModel.StatusCheckedOut: channelModel.StatusCheckedOut,
	bookingModel.StatusCancelled:  channelModel.StatusCancelled,
}

var statusFromExternal = map[string]string{
	channelModel.StatusNew:        bookingModel.StatusPending,
	channelModel.StatusConfirmed:  bookingModel.StatusConfirmed,
	channelModel.StatusModified:   bookingModel.StatusConfirmed,
	channelModel.StatusCheckedIn:  bookingModel.StatusCheckedIn,
	channelModel.StatusCheckedOut: bookingModel.StatusCheckedOut,
	channelModel.StatusCancelled:  bookingModel.StatusCancelled,
	channelModel.StatusNoShow:     bookingModel.StatusCancelled,
}

var sourceToPartner = map[string]string{
	bookingModel.SourceDirect:     PartnerDirect,
	bookingModel.SourceWebsite:    PartnerDirect,
	bookingModel.SourcePhone:      PartnerDirect,
	bookingModel.SourceWalkIn:     PartnerDirect,
	bookingModel.SourceBookingCom: PartnerBookingCom,
	bookingModel.SourceAirbnb:     PartnerAirbnb,
	bookingModel.SourceAgoda:      PartnerAgoda,
	bookingModel.SourceExpedia:    PartnerExpedia,
	bookingModel.SourceOther:      PartnerOther,
}

// partnerToSource is keyed by the lower-cased partner name.
var partnerToSource = map[string]string{
	"booking.com": bookingModel.SourceBookingCom,
	"booking":     bookingModel.SourceBookingCom,
	"airbnb":      bookingModel.SourceAirbnb,
	"agoda":       bookingModel.SourceAgoda,
	"expedia":     bookingModel.SourceExpedia,
	"direct":      bookingModel.SourceDirect,
	"other":       bookingModel.SourceOther,
}

func lookup(table map[string]string, key, fallback string) string {
	if value, ok := table[key]; ok {
		return value
	}

	return fallback
}

// StatusPMSToExternal maps a PMS status to the channel vocabulary, unknown values become "new".
func StatusPMSToExternal(status string) string {
	return lookup(statusToExternal, strings.ToLower(strings.TrimSpace(status)), channelModel.StatusNew)
}

// StatusExternalToPMS maps a channel status to the PMS vocabulary, unknown values become "pending".
func StatusExternalToPMS(status string) string {
	return lookup(statusFromExternal, strings.ToLower(strings.TrimSpace(status)), bookingModel.StatusPending)
}

func SourceToPartnerName(source string) string {
	return lookup(sourceToPartner, strings.ToLower(strings.TrimSpace(source)), PartnerOther)
}

func PartnerNameToSource(partner string) string {
	return lookup(partnerToSource, strings.ToLower(strings.TrimSpace(partner)), bookingModel.SourceOther)
}
