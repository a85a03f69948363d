package v12

import "github.com/yaklabco/ngmigrate/pkg/migrate"

func init() {
	migrate.DefaultRegistry.MustRegister(NewMigration())
}

// NewMigration builds the 12.0.0 migration.
func NewMigration() (*migrate.Migration, error) {
	return migrate.NewMigration(Version,
		"Tabs and bottom navigation rework, RowType, date and time picker inputs",
		Stages()...)
}

// Stages returns the stages of the migration in execution order.
func Stages() []migrate.Stage {
	stages := []migrate.Stage{
		{Rule: NewTabAlignmentRule(), Group: tabsFamily.component},
	}

	for _, family := range tabFamilies {
		group := family.component
		stages = append(stages,
			migrate.Stage{Rule: newWrapTemplateRule(family), Group: group},
			migrate.Stage{Rule: newHeaderRule(family), Group: group},
			migrate.Stage{Rule: newContentRule(family), Group: group},
			migrate.Stage{Rule: newReviewCommentRule(family), Group: group},
			migrate.Stage{Rule: newSelectorRule(family)},
		)
	}

	stages = append(stages, migrate.Stage{Rule: NewRowTypeRule()})
	for _, e := range editors {
		stages = append(stages, migrate.Stage{Rule: newEditorInputsRule(e)})
	}
	return stages
}
