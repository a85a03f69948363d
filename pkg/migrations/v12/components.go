package v12

// Version is the library version this package migrates to.
const Version = "12.0.0"

// reviewComment flags a component whose markup was restructured.
const reviewComment = "<!--NOTE: This component has been updated by Infragistics migration: v" + Version +
	"\nPlease check your template whether all bindings/event handlers are correct.-->\n"

// tabFamily describes one tab-like component whose items gain header and
// panel children.
type tabFamily struct {
	// component is the container tag.
	component string

	// tags are the item tags that get a header and a panel.
	tags []string

	headerTag      string
	panelTag       string
	iconDirective  string
	labelDirective string

	// headerClassTags lists item tags whose class moves to the header;
	// panelClassTags those whose class moves to the panel.
	headerClassTags []string
	panelClassTags  []string

	// selectors maps old style selectors to their replacement.
	selectors []selectorRename
}

type selectorRename struct {
	from string
	to   string
}

//nolint:gochecknoglobals // Fixed component tables.
var (
	bottomNavFamily = &tabFamily{
		component:       "igx-bottom-nav",
		tags:            []string{"igx-bottom-nav-item", "igx-tab-panel", "igx-tab"},
		headerTag:       "igx-bottom-nav-header",
		panelTag:        "igx-bottom-nav-content",
		iconDirective:   "igxBottomNavHeaderIcon",
		labelDirective:  "igxBottomNavHeaderLabel",
		headerClassTags: []string{"igx-tab"},
		panelClassTags:  []string{"igx-tab-panel"},
		selectors: []selectorRename{
			{from: "igx-tab-panel", to: "igx-bottom-nav-content"},
			{from: "igx-tab", to: "igx-bottom-nav-header"},
		},
	}

	tabsFamily = &tabFamily{
		component:       "igx-tabs",
		tags:            []string{"igx-tabs-group", "igx-tab-item"},
		headerTag:       "igx-tab-header",
		panelTag:        "igx-tab-content",
		iconDirective:   "igxTabHeaderIcon",
		labelDirective:  "igxTabHeaderLabel",
		headerClassTags: []string{"igx-tab-item"},
		panelClassTags:  []string{"igx-tabs-group"},
		selectors: []selectorRename{
			{from: "igx-tab-item", to: "igx-tab-header"},
			{from: "igx-tabs-group", to: "igx-tab-content"},
		},
	}

	tabFamilies = []*tabFamily{bottomNavFamily, tabsFamily}
)

// editor describes a picker whose inputs changed.
type editor struct {
	component         string
	templateDirective string
	defaultLabel      string
	templateWarning   string
}

func templateWarning(directive, page string) string {
	return "\n<!-- " + directive + " has been removed.\n" +
		"Label, prefix, suffix and hint can now be projected directly.\n" +
		"See https://www.infragistics.com/products/ignite-ui-angular/angular/components/" + page + " -->\n"
}

//nolint:gochecknoglobals // Fixed component tables.
var editors = []*editor{
	{
		component:         "igx-date-picker",
		templateDirective: "igxDatePickerTemplate",
		defaultLabel:      "Date",
		templateWarning:   templateWarning("igxDatePickerTemplate", "date-picker"),
	},
	{
		component:         "igx-time-picker",
		templateDirective: "igxTimePickerTemplate",
		defaultLabel:      "Time",
		templateWarning:   templateWarning("igxTimePickerTemplate", "time-picker"),
	},
}

// tabAlignments maps the removed igx-tabs "type" values to "tabAlignment".
// Other values have no equivalent.
//
//nolint:gochecknoglobals // Fixed value table.
var tabAlignments = map[string]string{
	"fixed":      "justify",
	"contentfit": "start",
}

// rowTypeName replaces every grid row component in typings.
const rowTypeName = "RowType"

// rowComponents are the row component classes RowType replaces.
//
//nolint:gochecknoglobals // Fixed rename table.
var rowComponents = map[string]string{
	"IgxGridRowComponent":         rowTypeName,
	"IgxGridGroupByRowComponent":  rowTypeName,
	"IgxTreeGridRowComponent":     rowTypeName,
	"IgxHierarchicalRowComponent": rowTypeName,
}

// libraryModule marks import declarations that belong to the library.
const libraryModule = "igniteui-angular"
