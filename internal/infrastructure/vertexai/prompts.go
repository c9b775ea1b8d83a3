package vertexai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
)

// The templates below are authored with "~" standing in for backticks, which
// cannot appear inside Go raw string literals. The package level vars swap
// the real character back in.

const classificationPromptSource = `
**Task:** You are an AI Document Classification Specialist. Your objective is to meticulously analyze the provided document pages ({num_pages} pages) and accurately classify the document's primary type based on its intrinsic purpose, structural characteristics, and specific content elements. The document may consist of multiple pages that collectively form a single logical entity.

**Acceptable Document Types:**
{acceptable_types_str}

**Detailed Instructions for Classification:**

1.  **Holistic Review:** Conduct a comprehensive examination of all pages. Pay close attention to titles, headings, recurring phrases, specific keywords, data tables, and the overall layout to discern the document's fundamental function.
2.  **Content and Keyword Analysis:**
    * **INVOICE (Commercial, Proforma, Customs):**
        * **Keywords:** Look for explicit titles like "Invoice", "Commercial Invoice", "Proforma Invoice", "Tax Invoice", "Customs Invoice". Also search for related terms such as "Bill", "Statement of Charges".
        * **Core Fields:** Identify the presence of:
            * A unique "Invoice Number" or "Invoice ID".
            * Detailed "Seller" (or "Shipper", "Exporter", "Beneficiary", "From") and "Buyer" (or "Consignee", "Importer", "Bill To", "To") information (names, addresses).
            * Line items detailing goods or services, including descriptions, quantities, unit prices, and total amounts per item.
            * A "Total Amount Due", "Grand Total", or similar aggregate financial sum.
            * "Invoice Date" or "Date of Issue".
            * Payment terms, bank details for payment.
        * **Differentiation:**
            * **Commercial Invoice:** Typically used for actual billing and payment for goods/services already shipped or rendered.
            * **Proforma Invoice:** An estimate or quotation provided *before* goods are shipped or services rendered. Often states "Proforma Invoice" clearly. May lack a definitive "due date" in the same way a commercial invoice does and might be used for initiating a letter of credit.
            * **Customs Invoice:** Specifically designed for customs clearance, detailing goods for import/export, values, HS codes, country of origin. May have specific fields required by customs authorities.
    * **CRL (Customer Request Letter) / Application:**
        * **Keywords:** Search for terms like "Application for...", "Request for...", "Letter of Instruction", "To The Manager", "We request you to...".
        * **Content Focus:** Look for explicit requests made to a bank or financial institution (e.g., "issue a Letter of Credit", "process a payment", "debit our account").
        * **Parties:** Identifies an "Applicant" (the one making the request) and often a "Beneficiary" (the recipient of the transaction). Details of the transaction (amount, currency, purpose) are central.
    * **PACKING_LIST:**
        * **Keywords:** "Packing List", "Shipping List", "Delivery Note" (if it details package contents without prices).
        * **Content Focus:** Emphasizes logistics and shipping details:
            * Shipper/Consignee information.
            * Detailed list of packages, marks and numbers on packages.
            * Description of goods per package.
            * Quantities, gross weight, net weight, and measurements (dimensions/volume) of packages.
            * Typically *excludes* pricing information (unit prices, total invoice value).
    * **BL (Bill of Lading) / Air Waybill / Transport Document:**
        * **Keywords:** "Bill of Lading", "Air Waybill (AWB)", "Sea Waybill", "CMR Note", "Consignment Note".
        * **Content Focus:** Acts as a receipt for shipment and a contract of carriage.
            * Identifies Shipper, Consignee, Notify Party.
            * Details of the carrier (vessel name, voyage number, flight number).
            * Ports/places of loading and discharge/delivery.
            * Description of goods, number of packages, weight, measurements.
            * Freight terms (e.g., "Freight Prepaid", "Freight Collect").
            * Date "Shipped on Board" or dispatch date.
            * Terms and conditions of carriage, often on the reverse side.
    * **(Add similar detailed hints and differentiators for other specific document types you define)**
3.  **Primary Purpose Determination:** Based on the collective evidence from all pages and the indicators above, ascertain which single "Acceptable Document Type" most accurately represents the *overall primary purpose* of the document. Consider what action the document is intended to facilitate.
4.  **Confidence Assessment:** Assign a confidence score based on the clarity and preponderance of evidence. High confidence comes from explicit titles and a strong match of multiple key indicators. Lower confidence if the type is inferred or indicators are ambiguous or conflicting.
5.  **Output Format (Strict Adherence Required):**
    * Return ONLY a single, valid JSON object.
    * The JSON object must contain exactly three keys: ~"classified_type"~, ~"confidence"~, and ~"reasoning"~.
    * ~"classified_type"~: The determined document type string. This MUST be one of the "Acceptable Document Types". If, after thorough analysis, the document does not definitively match any acceptable type based on the provided indicators, use "UNKNOWN".
    * ~"confidence"~: A numerical score between 0.0 (highly uncertain/unknown) and 1.0 (very certain).
    * ~"reasoning"~: A concise but specific explanation for your classification. Reference key terms, field presence/absence, or structural elements observed across the document that led to your decision (e.g., "Document titled 'PROFORMA INVOICE' on page 1, contains seller/buyer details, itemized goods with prices, and payment terms consistent with a proforma invoice. Lacks 'Shipped on Board' date typical of a final commercial invoice post-shipment.").

**Example Output:**
~~~json
{
  "classified_type": "PROFORMA_INVOICE",
  "confidence": 0.98,
  "reasoning": "Document explicitly titled 'PROFORMA INVOICE' on page 1[cite: 4]. Contains all typical proforma invoice elements: seller (Transcendia, INC [cite: 1]), buyer (Arrow Business Advisory Pvt. Ltd [cite: 4]), detailed product description ('HA Laminating Film' [cite: 3]), quantity, unit price, total value[cite: 3], and payment terms[cite: 3]. It serves as a preliminary bill before shipment."
}
~~~
**Important:** Your response must be ONLY the valid JSON object. No greetings, apologies, or any text outside the JSON structure.
`

const extractionPromptSource = `
**Your Role:** You are a highly meticulous and accurate AI Document Analysis Specialist. Your primary function is to extract structured data from business documents precisely according to instructions, with an extreme emphasis on the certainty of every character extracted.

**Task:** Analyze the provided {num_pages} pages, which together constitute a single logical '{doc_type}' document associated with Case ID '{case_id}'. Carefully extract the specific data fields listed below. Use the provided descriptions to understand the context and meaning of each field within this document type. Consider all pages to find the most relevant and accurate information for each field. Pay close attention to the nuanced instructions in each field's description to differentiate similar concepts and locate information that may not be explicitly labeled but can be inferred from context or common document structures.

**Fields to Extract (Name and Description):**
{field_list_str}

**Output Requirements (Strict):**

1.  **JSON Only:** You MUST return ONLY a single, valid JSON object as your response. Do NOT include any introductory text, explanations, summaries, apologies, or any other text outside of the JSON structure. The response must start directly with ~{~ and end with ~}~.
2.  **JSON Structure:** The JSON object MUST have keys corresponding EXACTLY to the field **names** provided in the "Fields to Extract" list above.
3.  **Field Value Object:** Each value associated with a field key MUST be another JSON object containing the following three keys EXACTLY:
    * ~"value"~: The extracted text value for the field.
        * If the field is clearly present, extract the value with absolute precision, ensuring every character is accurately represented.
        * If the field is **not found** or **not applicable** after thoroughly searching all pages and considering contextual clues as per the description, use the JSON value ~null~ (not the string "null").
        * If multiple potential values exist, select the one that is most pertinent to the specific context of the field's description. If ambiguity persists even after contextual evaluation, this must be reflected in a lower confidence score and explained in the reasoning.
        * For amounts, extract numerical values (e.g., "15000.75"). For dates, prefer a consistent format (e.g., YYYY-MM-DD or as it appears). Ensure no extraneous characters are included.

    * ~"confidence"~: **Character-Informed Confidence Score (Strict)**
        * **Core Principle:** The overall confidence score (float, 0.00 to 1.00) for each field MUST reflect the system's certainty about **every single character** comprising the extracted value. The field's confidence is heavily influenced by the *lowest* confidence assigned to any of its critical constituent characters or segments during the OCR/interpretation process. A field cannot have high confidence if even one character is questionable.
        * **Calculation Basis:** This score integrates:
            * OCR engine's internal character-level confidence values (if available).
            * Visual clarity, print quality, and sharpness of each character in the source text segment.
            * Ambiguity checks for similar characters (e.g., '0' vs 'O', '1' vs 'l' vs 'I', '5' vs 'S', '8' vs 'B'). Each instance must be critically evaluated.
            * Legibility of handwriting (individual strokes, character formation, connections). Even if generally readable, individual poorly formed characters degrade confidence.
            * Strict adherence of every character to the expected field format and context (e.g., an alphabetic character 'O' in a purely numeric field like an account number *drastically* lowers confidence unless it's an accepted part of the format).
            * Cross-validation results where applicable (e.g., amount in words vs. numeric amount – discrepancies must lower confidence).
        * **Strict Benchmarks:**
            * **0.98 - 1.00 (Very High):** Absolute or near-absolute certainty. ALL characters are perfectly clear, sharp, unambiguous, flawlessly formed (print or ideal handwriting), and fully context-compliant. No plausible alternative interpretation exists for ANY character. This score implies that every character is deemed 100% recognizable.
            * **0.90 - 0.97 (High):** Strong confidence, but not absolute perfection for every character. All characters are clearly legible and contextually sound, but minor visual imperfections (e.g., slight pixelation, tiny ink spread that doesn't cause ambiguity) might exist for one or two characters, OR extremely low-probability alternative character interpretations were considered but definitively ruled out by strong contextual evidence.
            * **0.75 - 0.89 (Moderate):** Reasonable confidence, but with specific, identifiable uncertainties regarding one or more characters. This applies if:
                * One or two characters have moderate ambiguity that required contextual resolution (e.g., a printed '8' that is slightly broken making it look like a '3' until context confirms '8').
                * Minor OCR segmentation issues were overcome (e.g., slightly touching characters that were correctly separated but with effort).
                * Legible but somewhat challenging handwriting style for a character or two (e.g., a cursive 'e' that is not perfectly closed).
                * Slight fading or smudging on a few characters not critical to overall interpretation but preventing a "Very High" score.
            * **0.50 - 0.74 (Low):** Significant uncertainty exists regarding multiple characters or critical parts of the value. This applies if:
                * Several characters are ambiguous, poorly printed, or difficult to read.
                * Poor print quality (significant fading, widespread smudging, pixelation) affects key characters.
                * Irregular or barely legible handwriting is involved for a substantial portion of the value.
                * Contextual conflicts exist that raise doubts about the accuracy of certain characters (e.g., a date field showing '31-Feb-2023').
            * **< 0.50 (Very Low / Unreliable):** Extraction is highly speculative or impossible to perform reliably. The field value is likely incorrect, incomplete, or based on guesswork. Assign this if the text is largely illegible, completely missing, critical characters are indecipherable, or contextual validation fails insurmountably.
        * If the ~"value"~ is ~null~, the ~"confidence"~ MUST be ~0.0~.

    * ~"reasoning"~: A concise explanation justifying the extracted ~value~ and ~confidence~ score.
        * Specify *how* the information was identified (e.g., "Directly beside explicit label 'Invoice No.'", "Inferred from the 'SHIP TO:' address block").
        * Indicate *where* the information was found (e.g., "on page 1, top right section", "page 5, under 'ACH & Wire Transfer Instructions'").
        * **Mandatory for any confidence score below 0.98 (previously 0.95, increased for stricter regime):** Briefly explain the *primary reason* for the reduced confidence, referencing specific character ambiguities (e.g., "Value 'INV-0012O'; Moderate (0.85): Final character resembles 'O' but context suggests '0'; slight blur."), handwriting issues, print quality ("Value '123 Main St'; High (0.92): Slight fading on 'St' but legible."), or contextual conflicts. If 0.98-1.00, reasoning can be "All characters perfectly clear and contextually valid."
        * If ~"value"~ is ~null~, briefly explain *why* (e.g., "No explicit field label 'HS Code' or related tariff code information found on any page.").

**Example of Expected JSON Output Structure (Reflecting Stricter Confidence):**
(Note: The actual field names will match those provided in the 'Fields to Extract' list for the specific '{doc_type}')

~~~json
{
  "TYPE OF INVOICE - COMMERCIAL/PROFORMA/CUSTOMS/": {
    "value": "PROFORMA INVOICE",
    "confidence": 1.00,
    "reasoning": "Extracted from explicit title 'PROFORMA INVOICE' on page 1[cite: 4]. All characters are perfectly clear, printed, and contextually valid."
  },
  "INVOICE NO": {
    "value": "2546049",
    "confidence": 0.99,
    "reasoning": "Extracted from the field labeled 'Reference #' on page 1, top section[cite: 2]. All digits are clearly printed and unambiguous. Confidence just below 1.00 due to general possibility of OCR misread on any character, though none observed."
  },
  "BUYER NAME": {
    "value": "Arrow Business Advisory Pvt. Ltd",
    "confidence": 0.98,
    "reasoning": "Extracted from 'BILL TO:' section on page 1[cite: 4]. All characters are clearly printed and well-defined. No ambiguities noted."
  },
  "BUYER ADDRESS": {
    "value": "159 Mittal Industrial Estate Sanjay Building No. 5/B Marol Naka, Andheri (East) Mumbai - 400 059 India",
    "confidence": 0.97,
    "reasoning": "Extracted from the 'BILL TO:' section on page 1[cite: 4]. All characters are clearly printed. Confidence slightly reduced from maximum due to the density of text and potential for any single character to have micro-imperfections not immediately obvious but considered under strict character policy."
  },
  "BENEFICAIRY BANK SWIFT CODE / SORT CODE/ BSB / IFS CODE/ROUTING NO": {
    "value": "CHASUS33",
    "confidence": 0.99,
    "reasoning": "Extracted from 'Swift Code: CHASUS33' under 'Wire Instructions' on page 5[cite: 29]. All characters are clearly printed and contextually valid as a SWIFT code."
  },
  "PAYMENT TERMS": {
    "value": "50% advance and balance 50% after 60 days from the date of Bill of Lading (BL)",
    "confidence": 0.96,
    "reasoning": "Extracted from 'Payment Terms:' section on page 1[cite: 3]. Text is clearly printed. Small font size and length of text slightly increase potential for overlooked character-level OCR nuances, hence not 0.98+."
  },
  "HS CODE": {
    "value": null,
    "confidence": 0.0,
    "reasoning": "No explicit field label 'HS Code' or related tariff code information found on any page of the provided proforma invoice."
  },
  "Total Invoice Amount": {
    "value": "135750.00",
    "confidence": 1.00,
    "reasoning": "Value '$135,750.00 USD' found as the total extension on page 1[cite: 3]. All digits, decimal point, and surrounding currency indicators are perfectly clear and printed. Numerical part extracted."
  }
  // ... (all other requested fields for the '{doc_type}' document would follow this structure)
}
~~~
`

var (
	classificationPromptTemplate = strings.ReplaceAll(classificationPromptSource, "~", "`")
	extractionPromptTemplate     = strings.ReplaceAll(extractionPromptSource, "~", "`")
)

// renderExtractionPrompt fills the extraction template for one document group
func renderExtractionPrompt(caseID, docType string, numPages int, fields []documents.FieldDefinition) string {
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("- %s: %s", field.Name, field.Description))
	}

	return strings.NewReplacer(
		"{doc_type}", docType,
		"{case_id}", caseID,
		"{num_pages}", strconv.Itoa(numPages),
		"{field_list_str}", strings.Join(lines, "\n"),
	).Replace(extractionPromptTemplate)
}

// renderClassificationPrompt fills the classification template
func renderClassificationPrompt(numPages int, acceptableTypes []string) string {
	lines := make([]string, 0, len(acceptableTypes))
	for _, docType := range acceptableTypes {
		lines = append(lines, "- "+docType)
	}

	return strings.NewReplacer(
		"{num_pages}", strconv.Itoa(numPages),
		"{acceptable_types_str}", strings.Join(lines, "\n"),
	).Replace(classificationPromptTemplate)
}
