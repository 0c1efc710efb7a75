package extraction

import (
	"fmt"
	"strings"
)

// AllowedIndustries is the closed set of industry values the model (and the
// submission form) may use.
var AllowedIndustries = []string{
	"B2B", "Consumer", "Fintech", "Healthcare", "Education", "Industrials", "Nonprofit",
}

const parseSystemPrompt = "You are a helpful assistant that extracts structured company information from text. Always return valid JSON only, no explanations."

const searchSystemPrompt = "You are a helpful AI assistant that extracts structured company information. You have access to web search and general knowledge about companies. Always return valid JSON only, no explanations."

// jsonSchemaBlock fixes the required output shape. Both prompt variants embed
// the exact same schema so they share one decode/normalize path.
const jsonSchemaBlock = `{
  "company_name": "string",
  "description": "string (brief description, 1-2 sentences)",
  "website": "string (full URL if found)",
  "location": "string (city, state/province, country format)",
  "industry": "string (must be one of: %s)",
  "founded": "number (year only, e.g., 2020)",
  "team_size": "number (approximate if range given)",
  "founder_name": "string (full name)",
  "founder_email": "string (email address)",
  "founder_role": "string (e.g., CEO & Co-Founder)"
}`

func schemaBlock() string {
	return fmt.Sprintf(jsonSchemaBlock, strings.Join(AllowedIndustries, ", "))
}

// parsePrompt builds the plain "parse this text" variant.
func parsePrompt(text, detectedURL string) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant that extracts structured company information from text.\n")
	b.WriteString("Parse the following text and extract company details. Return ONLY a valid JSON object with these fields:\n")
	b.WriteString(schemaBlock())
	b.WriteString("\n\nRules:\n")
	b.WriteString("- If a field cannot be determined from the text, use null or empty string\n")
	b.WriteString("- Be accurate and only extract information that is clearly stated\n")
	b.WriteString("- For industry, choose the closest match from the allowed values\n")
	b.WriteString("- For team_size, if a range is given (e.g., \"10-50\"), use the midpoint or lower bound\n")
	b.WriteString("- Extract website URL if mentioned, even if partial (add https:// if needed)\n")
	b.WriteString("\nText to parse:\n")
	b.WriteString(text)
	if hint := companyNameHint(detectedURL); hint != "" {
		b.WriteString(fmt.Sprintf("\n\nNote: The company name might be %q based on the website URL.", hint))
	}
	b.WriteString("\n\nReturn only the JSON object, no other text or explanation.")
	return b.String()
}

// searchPrompt builds the enriched "search and compile" variant. The model is
// invited to use web search or general knowledge keyed off the detected URL.
func searchPrompt(text, detectedURL string) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant with web search capabilities. Extract and compile comprehensive company information.\n")
	if detectedURL != "" {
		b.WriteString(fmt.Sprintf("\nThe user provided this URL: %s. Please search the web for information about this company.\n", detectedURL))
	}
	b.WriteString("\nParse the following information and extract company details. If you need more information, use your knowledge to fill in reasonable defaults based on the company name or industry.\n")
	b.WriteString("\nRequired JSON format:\n")
	b.WriteString(schemaBlock())
	b.WriteString("\n\nInput to parse:\n")
	b.WriteString(text)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Extract all available information accurately\n")
	b.WriteString("- For missing fields, use your knowledge about the company if you recognize it\n")
	b.WriteString("- For the website field, ensure it's a valid URL with https://\n")
	b.WriteString("- Choose the most appropriate industry category\n")
	b.WriteString("- If team_size is a range, use the midpoint\n")
	b.WriteString("- Provide a clear, compelling description\n")
	b.WriteString("- Return ONLY valid JSON, no explanations\n")
	b.WriteString("\nJSON:")
	return b.String()
}

// companyNameHint guesses a company name from a website URL: the first label
// of the host, capitalized. Best effort only; the model decides what to keep.
func companyNameHint(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return ""
	}
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	host := strings.SplitN(u, "/", 2)[0]
	label := strings.SplitN(host, ".", 2)[0]
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
