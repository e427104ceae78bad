package validation

// Messages holds the user-facing text for each validation rule. Rule
// messages are data, not code: catalogs below can be extended or
// overridden per deployment locale.
type Messages struct {
	TitleRequired       string
	DescriptionRequired string
	CompletedBoolean    string
	UsernameRequired    string
}

// catalogs maps a locale tag to its message set. The "fa" catalog
// carries the messages the product originally shipped with.
var catalogs = map[string]Messages{
	"fa": {
		TitleRequired:       "عنوان اجباری میباشد.",
		DescriptionRequired: "توضیحات اجباری میباشد.",
		CompletedBoolean:    "Completed must be a boolean",
		UsernameRequired:    "Username is required.",
	},
	"en": {
		TitleRequired:       "Title is required.",
		DescriptionRequired: "Description is required.",
		CompletedBoolean:    "Completed must be a boolean",
		UsernameRequired:    "Username is required.",
	},
}

// MessagesForLocale returns the message catalog for a locale, falling
// back to "fa" for unknown tags.
func MessagesForLocale(locale string) Messages {
	if msgs, ok := catalogs[locale]; ok {
		return msgs
	}
	return catalogs["fa"]
}
