package catalog

import "github.com/flarebyte/switchline/internal/cmdline"

// Grammars returns the built-in command set: navigation and patient record
// commands of the ward assistant.
func Grammars() []cmdline.Grammar {
	return []cmdline.Grammar{
		{
			Keyword: "back",
			Summary: "Go back to the previous context",
			Script:  `"Back to the previous context"`,
		},
		{
			Keyword: "bye",
			Summary: "Leave the session",
		},
		{
			Keyword: "help",
			Summary: "List commands or show the usage of one",
			Arg:     cmdline.Optional,
			ArgName: "COMMAND",
		},
		{
			Keyword: "history",
			Summary: "Show the last commands entered",
		},
		{
			Keyword:         "find",
			Summary:         "Search records by name",
			Arg:             cmdline.Optional,
			ArgName:         "QUERY",
			EmptyArgMessage: "What should I look for?",
			Switches: []cmdline.SwitchDefinition{
				{Name: "tag", Level: cmdline.Optional, Alias: "t", Summary: "Only records with this tag"},
				{Name: "patient", Level: cmdline.None, Alias: "p", Summary: "Search patients only"},
				{Name: "impression", Level: cmdline.None, Alias: "im", Summary: "Search impressions only"},
			},
		},
		{
			Keyword:         "open",
			Summary:         "Open a patient or impression",
			Arg:             cmdline.Required,
			ArgName:         "NAME",
			EmptyArgMessage: "Which record should I open?",
			Switches: []cmdline.SwitchDefinition{
				{Name: "patient", Level: cmdline.None, Alias: "p"},
				{Name: "impression", Level: cmdline.None, Alias: "im"},
			},
		},
		{
			Keyword:         "primary",
			Summary:         "Set the primary diagnosis of the patient",
			Arg:             cmdline.Required,
			ArgName:         "IMPRESSION",
			EmptyArgMessage: "You didn't tell me which impression to set!",
			Script:          `return "Primary diagnosis set to " .. arg`,
		},
		{
			Keyword:         "delete",
			Summary:         "Delete data from the patient",
			Arg:             cmdline.Required,
			ArgName:         "NAME",
			EmptyArgMessage: "What should I delete?",
			Switches: []cmdline.SwitchDefinition{
				{Name: "critical", Level: cmdline.Optional, Alias: "c", Summary: "Critical issue"},
				{Name: "investigation", Level: cmdline.Optional, Alias: "in", Summary: "Investigation"},
				{Name: "impression", Level: cmdline.Optional, Alias: "im", Summary: "Impression"},
			},
		},
		{
			Keyword: "edit",
			Summary: "Edit the details of the patient",
			Switches: []cmdline.SwitchDefinition{
				{Name: "height", Level: cmdline.Required, Alias: "h", Summary: "Height in cm"},
				{Name: "weight", Level: cmdline.Optional, Alias: "w", Summary: "Weight in kg"},
				{Name: "age", Level: cmdline.Optional, Alias: "a"},
				{Name: "number", Level: cmdline.Optional, Alias: "n", Summary: "Contact number"},
				{Name: "address", Level: cmdline.Optional, Alias: "ad"},
				{Name: "history", Level: cmdline.Optional, Alias: "hi", Summary: "Medical history"},
				{Name: "allergies", Level: cmdline.Optional, Alias: "al"},
			},
		},
		{
			Keyword:         "status",
			Summary:         "Advance or set the status of a treatment",
			Arg:             cmdline.Required,
			ArgName:         "TREATMENT",
			EmptyArgMessage: "Which treatment should I update?",
			Switches: []cmdline.SwitchDefinition{
				{Name: "set", Level: cmdline.Required, Alias: "s", Summary: "New status name or index"},
			},
		},
		{
			Keyword: "move",
			Summary: "Move evidence or a treatment to another impression",
			Arg:     cmdline.Optional,
			ArgName: "NAME",
			Switches: []cmdline.SwitchDefinition{
				{Name: "impression", Level: cmdline.Required, Alias: "im", Summary: "Target impression"},
				{Name: "evidence", Level: cmdline.Optional, Alias: "e"},
				{Name: "treatment", Level: cmdline.Optional, Alias: "t"},
			},
		},
	}
}
