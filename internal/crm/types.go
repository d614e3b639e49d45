package crm

// Entry is the flat client-facing shape of one CRM record.
type Entry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Company       string `json:"company"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	DealValue     string `json:"dealValue"`
	LeadSource    string `json:"leadSource"`
	DiscoveryCall string `json:"discoveryCall"`
	Summary       string `json:"summary"`
	Communication string `json:"communication"`
	CreatedTime   string `json:"createdTime"`
	LastEdited    string `json:"lastEdited"`
}

// Option is a selectable Status or Lead Source value.
type Option struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateRequest creates a new CRM entry. Only Name is mandatory; Status
// defaults to "Contacted" when empty.
type CreateRequest struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	DealValue  string `json:"dealValue"`
	LeadSource string `json:"leadSource"`
	Summary    string `json:"summary"`
}

// UpdateRequest patches an existing entry. Nil fields are left untouched;
// empty strings clear the underlying property where the store supports it.
type UpdateRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Company       *string `json:"company"`
	Email         *string `json:"email"`
	Status        *string `json:"status"`
	DealValue     *string `json:"dealValue"`
	LeadSource    *string `json:"leadSource"`
	DiscoveryCall *string `json:"discoveryCall"`
	Summary       *string `json:"summary"`
	Communication *string `json:"communication"`
}

// ListResponse is the GET /crm payload.
type ListResponse struct {
	Clients           []Entry  `json:"clients"`
	StatusOptions     []Option `json:"statusOptions"`
	LeadSourceOptions []Option `json:"leadSourceOptions"`
}

// page mirrors the subset of the Notion page object this service reads.
type page struct {
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	Properties     map[string]property `json:"properties"`
}

type property struct {
	Title    []richText   `json:"title,omitempty"`
	RichText []richText   `json:"rich_text,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Status   *namedOption `json:"status,omitempty"`
	Select   *namedOption `json:"select,omitempty"`
	Date     *dateValue   `json:"date,omitempty"`
}

type richText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *textContent `json:"text,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

type namedOption struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type dateValue struct {
	Start string `json:"start"`
}

// parsePage flattens a Notion page into an Entry. Missing properties fall
// back to empty strings; a missing Status reads as "Contacted".
func parsePage(p page) Entry {
	e := Entry{
		ID:          p.ID,
		Status:      "Contacted",
		CreatedTime: p.CreatedTime,
		LastEdited:  p.LastEditedTime,
	}

	if prop, ok := p.Properties["Name"]; ok && len(prop.Title) > 0 {
		e.Name = prop.Title[0].PlainText
	}
	if prop, ok := p.Properties["Company"]; ok && len(prop.RichText) > 0 {
		e.Company = prop.RichText[0].PlainText
	}
	if prop, ok := p.Properties["Email"]; ok && prop.Email != nil {
		e.Email = *prop.Email
	}
	if prop, ok := p.Properties["Status"]; ok && prop.Status != nil && prop.Status.Name != "" {
		e.Status = prop.Status.Name
	}
	if prop, ok := p.Properties["Deal Value"]; ok && len(prop.RichText) > 0 {
		e.DealValue = prop.RichText[0].PlainText
	}
	if prop, ok := p.Properties["Lead Source"]; ok && prop.Select != nil {
		e.LeadSource = prop.Select.Name
	}
	if prop, ok := p.Properties["Discovery Call"]; ok && prop.Date != nil {
		e.DiscoveryCall = prop.Date.Start
	}
	if prop, ok := p.Properties["Summary"]; ok && len(prop.RichText) > 0 {
		e.Summary = prop.RichText[0].PlainText
	}
	if prop, ok := p.Properties["Communication"]; ok && len(prop.RichText) > 0 {
		e.Communication = prop.RichText[0].PlainText
	}
	return e
}

func titleProp(content string) map[string]any {
	return map[string]any{"title": []map[string]any{{"text": map[string]any{"content": content}}}}
}

func richTextProp(content string) map[string]any {
	return map[string]any{"rich_text": []map[string]any{{"text": map[string]any{"content": content}}}}
}

func statusProp(name string) map[string]any {
	return map[string]any{"status": map[string]any{"name": name}}
}
