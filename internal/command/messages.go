package command

// Feedback and error messages shown to the user.
const (
	MessageInvalidCommandFormat = "Invalid command format!\n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageInvalidToEditNric    = "The NRIC of the person to edit is invalid.\n%s"
	MessageBothInvalidNric      = "The elderly and volunteer NRIC are both invalid.\n%s"
	MessageInvalidPersonNric    = "The %s NRIC is invalid.\n%s"
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): %s"
	MessageCommandTooLong       = "Command exceeds the maximum length of %d characters"

	MessageAddElderlySuccess      = "New elderly added: %s"
	MessageAddVolunteerSuccess    = "New volunteer added: %s"
	MessageNricTakenByElderly     = "The NRIC %s is already registered as an elderly"
	MessageNricTakenByVolunteer   = "The NRIC %s is already registered as a volunteer"
	MessageEditSuccess            = "Edited: %s"
	MessageNoSuchPerson           = "No elderly or volunteer with NRIC %s exists"
	MessageDeleteElderlySuccess   = "Deleted elderly: %s"
	MessageDeleteVolunteerSuccess = "Deleted volunteer: %s"
	MessageCascadedPairs          = "\nAlso deleted %d pair(s):"
	MessagePairSuccess            = "New pair added: %s"
	MessageUnpairSuccess          = "Deleted pair: %s"
	MessageListed                 = "Listed %d elderly, %d volunteers and %d pairs"
	MessageCleared                = "FriendlyLink has been cleared!"
	MessageExit                   = "Exiting FriendlyLink as requested ..."
)

// Usage strings, referenced by "invalid command format" errors.
const (
	UsageAddElderly = WordAddElderly + ": Adds an elderly to FriendlyLink.\n" +
		"Parameters: n/NAME ic/NRIC [p/PHONE] [e/EMAIL] [a/ADDRESS] [ag/AGE] [r/REGION] [rl/RISK] [t/TAG]... [dr/START, END]...\n" +
		"Example: " + WordAddElderly + " n/Tan Ah Kow ic/S1234567A ag/80 r/NORTH rl/HIGH t/diabetic"

	UsageAddVolunteer = WordAddVolunteer + ": Adds a volunteer to FriendlyLink.\n" +
		"Parameters: n/NAME ic/NRIC [p/PHONE] [e/EMAIL] [a/ADDRESS] [ag/AGE] [r/REGION] [t/TAG]... [mt/SKILL, LEVEL]... [dr/START, END]...\n" +
		"Example: " + WordAddVolunteer + " n/Ben Lim ic/T7654321B mt/CPR, BASIC"

	UsageEdit = WordEdit + ": Edits the elderly or volunteer identified by NRIC. " +
		"A prefix with no value clears a repeatable field.\n" +
		"Parameters: NRIC [n/NAME] [ic/NRIC] [p/PHONE] [e/EMAIL] [a/ADDRESS] [ag/AGE] [r/REGION] [rl/RISK] [t/TAG]... [mt/SKILL, LEVEL]... [dr/START, END]...\n" +
		"Example: " + WordEdit + " S1234567A p/91234567 t/"

	UsageDeleteElderly = WordDeleteElderly + ": Deletes the elderly and all of their pairs.\n" +
		"Parameters: NRIC\nExample: " + WordDeleteElderly + " S1234567A"

	UsageDeleteVolunteer = WordDeleteVolunteer + ": Deletes the volunteer and all of their pairs.\n" +
		"Parameters: NRIC\nExample: " + WordDeleteVolunteer + " T7654321B"

	UsagePair = WordPair + ": Pairs an elderly with a volunteer.\n" +
		"Parameters: nl/ELDERLY_NRIC nv/VOLUNTEER_NRIC\nExample: " + WordPair + " nl/S1234567A nv/T7654321B"

	UsageUnpair = WordUnpair + ": Deletes the pair of an elderly and a volunteer.\n" +
		"Parameters: nl/ELDERLY_NRIC nv/VOLUNTEER_NRIC\nExample: " + WordUnpair + " nl/S1234567A nv/T7654321B"

	UsageFind = WordFind + ": Finds elderly, volunteers and their pairs matching every given criterion.\n" +
		"Parameters: [n/NAME KEYWORDS] [ic/NRIC] [r/REGION] [t/TAG]...\nExample: " + WordFind + " n/tan r/NORTH"

	UsageList = WordList + ": Lists records.\n" +
		"Parameters: [elderly|volunteers|pairs|paired|unpaired]\nExample: " + WordList + " unpaired"

	UsageStats = WordStats + ": Shows registry statistics."
	UsageClear = WordClear + ": Removes every record."
	UsageHelp  = WordHelp + ": Shows the available commands."
	UsageExit  = WordExit + ": Saves and exits."
)
