package langdetect_test

import (
	"testing"

	"github.com/yaklabco/ngmigrate/pkg/langdetect"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	classifier := langdetect.NewClassifier(nil)

	tests := []struct {
		name     string
		path     string
		content  string
		wantKind workspace.Kind
		wantOK   bool
	}{
		{
			name:     "component template",
			path:     "src/app/app.component.html",
			content:  "<igx-tabs></igx-tabs>\n",
			wantKind: workspace.KindTemplate,
			wantOK:   true,
		},
		{
			name:     "upper case extension",
			path:     "src/app/LEGACY.HTML",
			content:  "<div></div>\n",
			wantKind: workspace.KindTemplate,
			wantOK:   true,
		},
		{
			name:     "scss",
			path:     "src/styles.scss",
			content:  "igx-tab-item { color: red; }\n",
			wantKind: workspace.KindStyle,
			wantOK:   true,
		},
		{
			name:     "sass",
			path:     "src/theme.sass",
			content:  "igx-tab-item\n  color: red\n",
			wantKind: workspace.KindStyle,
			wantOK:   true,
		},
		{
			name:     "typescript",
			path:     "src/app/grid.component.ts",
			content:  "import { IgxGridRowComponent } from 'igniteui-angular';\nexport class A {}\n",
			wantKind: workspace.KindSource,
			wantOK:   true,
		},
		{
			name:    "qt linguist translation file",
			path:    "i18n/app_de.ts",
			content: "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE TS>\n<TS version=\"2.1\" language=\"de\">\n</TS>\n",
			wantOK:  false,
		},
		{
			name:    "node_modules",
			path:    "node_modules/igniteui-angular/lib/tabs/tabs.component.html",
			content: "<div></div>\n",
			wantOK:  false,
		},
		{
			name:    "markdown",
			path:    "README.md",
			content: "# readme\n",
			wantOK:  false,
		},
		{
			name:    "no extension",
			path:    "Makefile",
			content: "all:\n",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, ok := classifier.Classify(tt.path, []byte(tt.content))
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Errorf("Classify(%q) kind = %v, want %v", tt.path, kind, tt.wantKind)
			}
		})
	}
}

func TestClassify_PathOnly(t *testing.T) {
	t.Parallel()

	classifier := langdetect.NewClassifier(nil)

	kind, ok := classifier.Classify("src/app/app.component.ts", nil)
	if !ok || kind != workspace.KindSource {
		t.Errorf("Classify() = %v, %v; want source, true", kind, ok)
	}
}

func TestNewClassifier_CustomExtensions(t *testing.T) {
	t.Parallel()

	classifier := langdetect.NewClassifier(map[workspace.Kind][]string{
		workspace.KindTemplate: {"htm", ".HTML"},
	})

	if kind, ok := classifier.KindByExtension("a.htm"); !ok || kind != workspace.KindTemplate {
		t.Errorf("KindByExtension(a.htm) = %v, %v", kind, ok)
	}
	if _, ok := classifier.KindByExtension("a.html"); !ok {
		t.Error("extensions are case-insensitive")
	}
	if _, ok := classifier.KindByExtension("a.scss"); ok {
		t.Error("kinds without extensions match nothing")
	}
}
