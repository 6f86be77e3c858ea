package dataset

// Field identifies a canonical semantic column of a social post table.
type Field string

const (
	FieldPlatform       Field = "platform"
	FieldContentType    Field = "content_type"
	FieldDate           Field = "date"
	FieldTime           Field = "time"
	FieldHour           Field = "hour"
	FieldDayOfWeek      Field = "day_of_week"
	FieldMonth          Field = "month"
	FieldCaptionLength  Field = "caption_length"
	FieldHashtagCount   Field = "hashtag_count"
	FieldHashtags       Field = "hashtags"
	FieldLikes          Field = "likes"
	FieldComments       Field = "comments"
	FieldShares         Field = "shares"
	FieldSaves          Field = "saves"
	FieldReach          Field = "reach"
	FieldEngagementRate Field = "engagement_rate"
)

// Canonical column names written by the cleaning pipeline when it
// derives or normalizes a column.
const (
	ColPlatform       = "Platform"
	ColContentType    = "Content_Type"
	ColDate           = "Date"
	ColHour           = "Hour"
	ColDayOfWeek      = "Day_of_Week"
	ColMonth          = "Month"
	ColCaptionLength  = "Caption_Length"
	ColHashtagCount   = "Hashtag_count"
	ColEngagementRate = "Engagement_Rate"
	ColReach          = "Reach"
)

// aliases lists the accepted header spellings per field, most canonical
// first. Resolution order is significant: the first alias present in
// the table wins.
var aliases = map[Field][]string{
	FieldPlatform:       {"Platform", "platform"},
	FieldContentType:    {"Content_Type", "content_type"},
	FieldDate:           {"Date", "date", "Posted_Date", "posted_date"},
	FieldTime:           {"Time", "time"},
	FieldHour:           {"Hour", "hour"},
	FieldDayOfWeek:      {"Day_of_Week", "day_of_week"},
	FieldMonth:          {"Month", "month"},
	FieldCaptionLength:  {"Caption_Length", "caption_length"},
	FieldHashtagCount:   {"Hashtag_count", "hashtag_count"},
	FieldHashtags:       {"Hashtags", "hashtags", "Hashtag", "hashtag"},
	FieldLikes:          {"Likes", "likes"},
	FieldComments:       {"Comments", "comments"},
	FieldShares:         {"Shares", "shares"},
	FieldSaves:          {"Saves", "saves"},
	FieldReach:          {"Reach", "reach"},
	FieldEngagementRate: {"Engagement_Rate", "engagement_rate"},
}

// Resolve maps a canonical field to the actual column name present in
// the header. Pure lookup, no fuzzy matching.
func Resolve(columns []string, f Field) (string, bool) {
	for _, alias := range aliases[f] {
		for _, c := range columns {
			if c == alias {
				return c, true
			}
		}
	}
	return "", false
}

// Resolve maps a canonical field to the table's actual column name.
func (t *Table) Resolve(f Field) (string, bool) {
	return Resolve(t.cols, f)
}
