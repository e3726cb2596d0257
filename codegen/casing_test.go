package codegen

import "testing"

func TestFormatIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		c    IdentifierCase
		want string
	}{
		{"camel from snake", "file_metadata", CamelCase, "fileMetadata"},
		{"pascal from snake", "file_metadata", PascalCase, "FileMetadata"},
		{"snake from camel", "fileMetadata", SnakeCase, "file_metadata"},
		{"screaming snake from camel", "fileMetadata", ScreamingSnakeCase, "FILE_METADATA"},
		{"pascal from pascal", "FileMetadata", PascalCase, "FileMetadata"},
		{"snake from pascal", "FileMetadata", SnakeCase, "file_metadata"},
		{"single word", "id", PascalCase, "Id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatIdentifier(tt.in, tt.c)
			if got != tt.want {
				t.Fatalf("FormatIdentifier(%q, %v) = %q, want %q", tt.in, tt.c, got, tt.want)
			}
		})
	}
}
