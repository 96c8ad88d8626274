package word

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Placeholders replaced in the Word template
const (
	PlaceholderDate           = "{{Date}}"
	PlaceholderTotalRoutes    = "{{TotalRoutes}}"
	PlaceholderTotalHandlers  = "{{TotalHandlers}}"
	PlaceholderTotalProtected = "{{TotalProtected}}"
	PlaceholderContent        = "{{Content}}"
)

var templateParts = []struct {
	name string
	body string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	// Required by some parsers
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr><w:t>API Route Report</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: ` + PlaceholderDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Total Routes: ` + PlaceholderTotalRoutes + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Total Handlers: ` + PlaceholderTotalHandlers + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Protected Routes: ` + PlaceholderTotalProtected + `</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/></w:rPr><w:t xml:space="preserve">` + PlaceholderContent + `</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// BuiltinTemplate returns the default .docx template with all placeholders
func BuiltinTemplate() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range templateParts {
		fw, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", part.name, err)
		}
		if _, err := fw.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish template: %w", err)
	}
	return buf.Bytes(), nil
}
