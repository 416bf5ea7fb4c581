package note

import "strings"

// Field is one front-matter key/value pair. Values are written verbatim.
type Field struct {
	Key   string
	Value string
}

// Block is one heading with its body lines.
// A tight block has no blank line between heading and body.
type Block struct {
	Heading string
	Lines   []string
	Tight   bool
}

// Document assembles a note from front-matter, blocks and a footer.
type Document struct {
	frontMatter []Field
	blocks      []Block
	footer      []string
}

// Meta appends a front-matter field.
func (d *Document) Meta(key, value string) *Document {
	d.frontMatter = append(d.frontMatter, Field{Key: key, Value: value})
	return d
}

// Section appends a block with a blank line after its heading.
func (d *Document) Section(heading string, lines ...string) *Document {
	d.blocks = append(d.blocks, Block{Heading: heading, Lines: lines})
	return d
}

// List appends a block whose body follows its heading directly.
func (d *Document) List(heading string, lines ...string) *Document {
	d.blocks = append(d.blocks, Block{Heading: heading, Lines: lines, Tight: true})
	return d
}

// Footer sets the lines printed below the closing rule.
func (d *Document) Footer(lines ...string) *Document {
	d.footer = lines
	return d
}

// String renders the document.
func (d *Document) String() string {
	var builder strings.Builder

	writeFrontmatter(&builder, d.frontMatter)
	for _, block := range d.blocks {
		writeBlock(&builder, block)
	}
	if len(d.footer) > 0 {
		builder.WriteString("\n---\n")
		for _, line := range d.footer {
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, fields []Field) {
	if len(fields) == 0 {
		return
	}
	builder.WriteString("---\n")
	for _, field := range fields {
		builder.WriteString(field.Key)
		builder.WriteString(": ")
		builder.WriteString(field.Value)
		builder.WriteByte('\n')
	}
	builder.WriteString("---\n")
}

func writeBlock(builder *strings.Builder, block Block) {
	builder.WriteByte('\n')
	builder.WriteString(block.Heading)
	builder.WriteByte('\n')
	if !block.Tight && len(block.Lines) > 0 {
		builder.WriteByte('\n')
	}
	for _, line := range block.Lines {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
}
