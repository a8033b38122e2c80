package notifications

import (
	"bytes"
	"encoding/json"
	"html/template"
)

const PilotSubmissionSubject = "New Pilot Submission"

const pilotSubmissionTemplate = `<pre>{{.}}</pre>`

var pilotSubmissionTmpl = template.Must(template.New("pilot_submission").Parse(pilotSubmissionTemplate))

// Field is one named submission value. Emails list fields in slice order.
type Field struct {
	Name  string
	Value string
}

// BuildPilotSubmissionHTML renders fields as an indented JSON object inside a pre block.
func BuildPilotSubmissionHTML(fields []Field) (string, error) {
	pretty, err := indentedObject(fields)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pilotSubmissionTmpl.Execute(&buf, string(pretty)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func indentedObject(fields []Field) ([]byte, error) {
	if len(fields) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range fields {
		name, err := jsonString(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := jsonString(f.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(fields)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonString leaves HTML escaping to the template.
func jsonString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
