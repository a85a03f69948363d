package langdetect

import "testing"

func BenchmarkClassifyTypeScript(b *testing.B) {
	classifier := NewClassifier(nil)
	content := []byte(`import { Component } from '@angular/core';
import { IgxGridRowComponent } from 'igniteui-angular';

@Component({ selector: 'app-grid', templateUrl: './grid.component.html' })
export class GridComponent {
	public row: IgxGridRowComponent;
}`)
	b.ResetTimer()
	for range b.N {
		classifier.Classify("src/app/grid.component.ts", content)
	}
}

func BenchmarkClassifyTemplate(b *testing.B) {
	classifier := NewClassifier(nil)
	content := []byte(`<igx-tabs type="fixed"><igx-tabs-group label="A"></igx-tabs-group></igx-tabs>`)
	b.ResetTimer()
	for range b.N {
		classifier.Classify("src/app/app.component.html", content)
	}
}
