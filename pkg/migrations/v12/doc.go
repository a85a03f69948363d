// Package v12 migrates projects to Ignite UI for Angular 12.0.0.
//
// # Stages
//
// The stages run in this order; each one is flushed before the next reads
// the files again:
//
//   - tabs-type-alignment: igx-tabs "type" becomes "tabAlignment"
//
//   - For igx-bottom-nav, then igx-tabs:
//
//   - <family>-wrap-template: ng-template[igxTab] becomes the header tag
//
//   - <family>-header: label, icon and routerLink become a header child
//
//   - <family>-content: the rest of the tab body moves into the panel tag
//
//   - <family>-review-comment: changed components are flagged for review
//
//   - <family>-style-selectors: old tag selectors are renamed in style sheets
//
//   - row-type-imports: grid row component types become RowType
//
//   - igx-date-picker-inputs, igx-time-picker-inputs: mode, label and
//     template changes of the editors
//
// Every stage leaves already migrated content alone, so running the whole
// migration twice changes nothing the second time.
package v12
