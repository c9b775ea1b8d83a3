package documents

// FieldDefinition describes a single field the extraction model is asked to
// return for a document type, together with the guidance used to locate it.
type FieldDefinition struct {
	Name        string
	Description string
}

// crlFields lists the fields extracted from customer request letters.
var crlFields = []FieldDefinition{
	{
		Name: "DATE & TIME OF RECEIPT FROM CIRCULAR SEAL",
		Description: `**Objective:** Analyze the provided document image to locate a specific circular seal and accurately extract the date and time indicated by it. The time extraction is of particular importance and should be handled with precision.

**Seal Description:**
1.  **Structure:** Identify a circular seal composed of two concentric circles.
2.  **Inner Circle (Date):** Contains a date in some recognizable format (e.g., YYYY-MM-DD, DD MON YYYY, MM/DD/YY). Directly **above** the date, centered within the inner circle, is a distinct **triangular pointer (arrow)**. The base of the triangle is towards the center of the seal, and the **sharp tip points radially outwards** towards the outer ring.
3.  **Outer Ring (24-Hour Time Scale):** The area between the two circles functions as a 24-hour time scale.
    * It is divided into **24 equally spaced major segments**, representing the hours 00 through 23. Assume these are arranged sequentially in a clockwise direction, with the 00 hour typically located at the 12 o'clock (top) position.
    * Each major hour segment is further subdivided into **4 equally spaced minor segments**, representing 15-minute intervals within that hour (i.e., :00, :15, :30, :45).
4.  **Time Indication (Crucial):** The **precise tip** of the triangular pointer (located above the date in the inner circle) points **directly to a specific marking** on the 24-hour time scale in the outer ring. This marking indicates the exact hour and the 15-minute interval of the time.

**Task:**
1.  **Locate Seal:** Find the described circular seal within the document image.
2.  **Extract Date:** Perform OCR on the inner circle to reliably read and extract the full date. Note the extracted date format.
3.  **Determine Time (Accurate Interpretation Required):**
    * **Identify the Hour:** Determine which of the 24 major hour segments the tip of the triangular pointer is aligned with.
    * **Identify the Minute Interval:** Determine which of the four 15-minute minor segments within that hour segment the tip of the triangular pointer is aligned with.
    * **Calculate Time:** Convert the identified hour and minute interval into HH:MM format (24-hour clock). Ensure accuracy in this conversion. For example, if the pointer is slightly past the '03' hour mark and points to the second minor segment, the time should be interpreted as 03:30.
4.  **Handle Imperfections and Estimation:** The seal or document image might have issues like fading, partial obstruction, incompleteness, or rotation.
    * Utilize any visible portions of the seal (circles, pointer, date, time markings) to infer the complete information.
    * If the pointer falls between clear markings, use geometric reasoning. Assume a full circle is 360 degrees, each hour segment spans 15 degrees ($360/24$), and each 15-minute segment spans 3.75 degrees ($15/4$). Calculate the angle of the pointer relative to a known reference point (like the inferred center and the 00-hour mark) to estimate the time as accurately as possible. **Explicitly state if estimation was necessary.**

**Output:**
* Provide the extracted **Date** and extracted **Time** in DD-MM-YYYY HH:MM format (24-hour clock).
* If the time was estimated due to imprecise pointer alignment or other visual ambiguities, please include a note indicating that the time was **estimated**.`,
	},
	{
		Name:        "CUSTOMER REQUEST LETTER DATE",
		Description: "The date mentioned on the customer's formal request letter.",
	},
	{
		Name:        "BENEFICIARY NAME",
		Description: "The name of the party (typically the exporter/seller) who is entitled to receive payment under the credit.",
	},
	{
		Name:        "BENEFICIARY ADDRESS",
		Description: "The full address of the beneficiary (exporter/seller).",
	},
	{
		Name:        "BENEFICIARY COUNTRY",
		Description: "The country where the beneficiary is located.",
	},
	{
		Name:        "CURRENCY",
		Description: "The specific currency code (e.g., USD, EUR, INR) for the transaction amount.",
	},
	{
		Name:        "AMOUNT",
		Description: "The principal monetary value of the transaction or credit.",
	},
	{
		Name:        "BENEFICIARY ACCOUNT NO / IBAN",
		Description: "The beneficiary's bank account number or International Bank Account Number (IBAN) for receiving funds.",
	},
	{
		Name:        "BENEFICIARY BANK",
		Description: "The name of the bank where the beneficiary holds their account.",
	},
	{
		Name:        "BENEFICIARY BANK ADDRESS",
		Description: "The full address of the beneficiary's bank.",
	},
	{
		Name:        "BENEFICIARY BANK SWIFT CODE / SORT CODE/ BSB / IFS CODE",
		Description: "The unique identification code of the beneficiary's bank (SWIFT/BIC for international, Sort Code for UK, BSB for Australia, IFSC for India).",
	},
	{
		Name:        "STANDARD DECLARATIONS AS PER PRODUCTS",
		Description: "Any standard clauses, declarations, or compliance statements required for the specific financial product.",
	},
	{
		Name:        "APPLICANT SIGNATURE",
		Description: "Indication or confirmation of the applicant's signature (may be text stating 'Signed' or an image area). Focus on confirmation text if present.",
	},
	{
		Name:        "APPLICANT NAME",
		Description: "The name of the party (typically the importer/buyer) who requested the transaction or credit.",
	},
	{
		Name:        "APPLICANT ADDRESS",
		Description: "The full address of the applicant (importer/buyer).",
	},
	{
		Name:        "APPLICANT COUNTRY",
		Description: "The country where the applicant is located.",
	},
	{
		Name:        "TRANSACTION Product Code Selection",
		Description: "A specific code identifying the type of financial product or transaction.",
	},
	{
		Name:        "TRANSACTION EVENT",
		Description: "A code or description identifying the specific event within the transaction lifecycle (e.g., issuance, amendment).",
	},
	{
		Name:        "VALUE DATE",
		Description: "The date on which the funds are expected to be credited or debited.",
	},
	{
		Name:        "HS CODE",
		Description: "The Harmonized System code, an international standard for classifying traded goods.",
	},
	{
		Name:        "TYPE OF GOODS",
		Description: "A general description of the merchandise being traded.",
	},
	{
		Name:        "INCOTERM",
		Description: "The standardized trade term (e.g., FOB, CIF, EXW) defining buyer/seller responsibilities for shipping, risk, and costs.",
	},
	{
		Name:        "DEBIT ACCOUNT NO",
		Description: "The applicant's account number from which funds will be debited.",
	},
	{
		Name:        "FEE ACCOUNT NO",
		Description: "The account number from which transaction fees will be debited (if different from the main debit account).",
	},
	{
		Name:        "LATEST SHIPMENT DATE",
		Description: "The latest date by which the goods must be shipped according to the credit terms.",
	},
	{
		Name:        "DISPATCH PORT",
		Description: "The port or place from where the goods are dispatched or shipped (Port of Loading).",
	},
	{
		Name:        "DELIVERY PORT",
		Description: "The port or place where the goods are to be delivered (Port of Discharge).",
	},
	{
		Name:        "FB CHARGES",
		Description: "Details regarding who bears the foreign bank charges (e.g., BEN, OUR, SHA).",
	},
	{
		Name:        "INTERMEDIARY BANK NAME",
		Description: "The name of any intermediary bank involved in the payment chain (if applicable).",
	},
	{
		Name:        "INTERMEDIARY BANK ADDRESS",
		Description: "The address of the intermediary bank (if applicable).",
	},
	{
		Name:        "INTERMEDIARY BANK COUNTRY",
		Description: "The country of the intermediary bank (if applicable).",
	},
	{
		Name:        "THIRD PARTY EXPORTER NAME",
		Description: "Name of a third-party exporter involved, if different from the main beneficiary.",
	},
	{
		Name:        "THIRD PARTY EXPORTER COUNTRY",
		Description: "Country of the third-party exporter, if applicable.",
	},
}

// invoiceFields lists the fields extracted from invoices. Several names carry
// spellings and spacing that downstream spreadsheets already depend on, so
// they must not be corrected here.
var invoiceFields = []FieldDefinition{
	{
		Name: "TYPE OF INVOICE - COMMERCIAL/PROFORMA/CUSTOMS/",
		Description: `The explicit classification of the invoice document. Search for titles or phrases like 'COMMERCIAL INVOICE', 'PROFORMA INVOICE', 'TAX INVOICE', 'CUSTOMS INVOICE', or 'INVOICE'.
If no explicit type is mentioned but it functions as a bill, infer 'COMMERCIAL' if it seems final for goods/services rendered.
If it's preliminary (e.g., for quotation, pre-shipment, or to open an L/C), infer 'PROFORMA'.
If it's specifically for customs purposes and includes details like HS codes and country of origin for declaration, infer 'CUSTOMS'.
Look across all pages, especially in headers or titles. Example: 'PROFORMA INVOICE'[cite: 4].`,
	},
	{
		Name: "INVOICE DATE",
		Description: `The specific date when the invoice was created or issued by the seller/issuer.
Look for labels like 'Invoice Date', 'Date', 'Issue Date', 'Date of Issue'.
It's usually found near the invoice number or seller's details. Ensure it's a clear date format (e.g., DD-MMM-YY, MM/DD/YYYY, YYYY-MM-DD). Example: '27-Sep-23'[cite: 4].`,
	},
	{
		Name: "INVOICE NO",
		Description: `The unique alphanumeric identifier assigned to this specific invoice by the seller/issuer.
Search for labels such as 'Invoice No.', 'Invoice #', 'Inv. No.', 'Reference #', 'Document No.'.
This is a critical field and is usually prominently displayed, often in the header or near the seller's information. Example: '2546049' listed under 'Reference #' [cite: 2] for a proforma invoice.`,
	},
	{
		Name: "BUYER NAME",
		Description: `The full legal name of the individual or company purchasing the goods or services.
Look for labels like 'Buyer', 'Bill To', 'Customer', 'Sold To', 'Consignee' (if also the buyer), 'Importer', 'To:', 'Applicant'.
It's often located in a distinct section detailing the recipient of the invoice. Example: 'Arrow Business Advisory Pvt. Ltd' [cite: 4] under 'BILL TO:'.`,
	},
	{
		Name: "BUYER ADDRESS",
		Description: `The complete mailing address of the buyer, including street, city, state/province, postal code, and potentially country.
This information is typically found directly below or adjacent to the 'BUYER NAME' under labels like 'Address', or within the 'Bill To' or 'Consignee' block.
Extract the full, multi-line address as a single string. Example: '159 Mittal Industrial Estate Sanjay Building No. 5/B Marol Naka, Andheri (East) Mumbai - 400 059 India'[cite: 4].`,
	},
	{
		Name: "BUYER COUNTRY",
		Description: `The country where the buyer is officially located or registered.
This is often the last line of the buyer's address or may be explicitly labeled as 'Country'.
If the address is multi-line, identify the country name. Example: 'India' [cite: 4] as part of the buyer's address.`,
	},
	{
		Name: "SELLER NAME",
		Description: `The full legal name of the individual or company selling the goods or services and issuing the invoice.
Look for labels like 'Seller', 'From', 'Shipper' (if also the seller), 'Exporter', 'Beneficiary', 'Invoice From', or it might be the company name in the letterhead.
Example: 'TRANSCENDIA, INC' [cite: 1] at the top of the document.`,
	},
	{
		Name: "SELLER ADDRESS",
		Description: `The complete mailing address of the seller, including street, city, state/province, postal code, and country.
Usually found near the 'SELLER NAME', often in the header or footer of the invoice, or under a 'Remit To' or 'From' section.
Extract the full, multi-line address as a single string. Example: '300 INDUSTRIAL PARKWAY RICHMOND, IN 47374'[cite: 1]. A more complete corporate HQ address might also be '9201 W. Belmont Avenue, Franklin Park, IL 60131'[cite: 27]. Prefer the address most clearly associated with the invoice issuance or seller identity on the primary invoice pages.`,
	},
	{
		Name: "SELLER COUNTRY",
		Description: `The country where the seller is officially located or registered.
This is typically the last line of the seller's address or may be explicitly labeled.
Based on the address 'RICHMOND, IN 47374'[cite: 1], the country is implicitly USA. For 'Franklin Park, IL 60131'[cite: 27], it's also USA. Explicitly state "USA" if inferred from state codes like IN or IL.`,
	},
	{
		Name: "INVOICE CURRENCY",
		Description: `The specific currency in which the invoice amounts are denominated (e.g., USD, EUR, GBP, INR).
Look for currency symbols ($, €, £) or currency codes (USD, EUR) next to monetary values, especially the total amount.
Sometimes explicitly stated like 'All amounts in USD'. Example: 'USD' is appended to the amount '$135,750.00 USD'[cite: 3].`,
	},
	{
		Name: "INVOICE AMOUNT/VALUE",
		Description: `The primary financial value of the invoice, typically the total sum of goods/services before certain taxes or after certain discounts, or the grand total if no other total is more prominent.
Search for terms like 'Total', 'Subtotal', 'Net Amount', 'Invoice Total', 'Grand Total'.
This should be a numerical value. Be careful to distinguish it from line item amounts if a clear overall total is present. Example: '$135,750.00'[cite: 3].`,
	},
	{
		Name: "INVOICE AMOUNT/VALUE IN WORDS",
		Description: `The total invoice amount written out in words (e.g., 'One Hundred Thirty-Five Thousand Seven Hundred Fifty Dollars Only').
This field is often found near the numerical total amount, sometimes labeled 'Amount in Words', 'Say Total', or just appearing as a textual representation of the sum.
This may not always be present. If not found, state null.`,
	},
	{
		Name: "BENEFICIARY ACCOUNT NO / IBAN",
		Description: `The bank account number or International Bank Account Number (IBAN) of the seller (beneficiary) where the payment should be sent.
Look for labels like 'Account No.', 'A/C No.', 'IBAN', 'Beneficiary Account'. Often found in a 'Bank Details' or 'Payment Instructions' section.
Example: 'Account #: 830769961' for both ACH and Wire[cite: 29].`,
	},
	{
		Name: "BENEFICARY BANK",
		Description: `The name of the bank where the seller (beneficiary) holds their account.
Search for labels such as 'Bank Name', 'Beneficiary Bank', 'Bank', 'Payable to Bank'.
This is usually listed in the payment instructions or bank details section. Example: 'JPMorgan Chase'[cite: 29].`,
	},
	{
		Name: "BENEFICAIRY BANK ADDRESS",
		Description: `The full mailing address of the seller's (beneficiary's) bank.
Look for this information near the beneficiary bank's name or within the 'Bank Details' section.
It should include street, city, and country. Example: 'New York, NY 10017'[cite: 29].`,
	},
	{
		Name: "BENEFICAIRY BANK SWIFT CODE / SORT CODE/ BSB / IFS CODE/ROUTING NO",
		Description: `The unique identification code for the seller's (beneficiary's) bank. This could be a SWIFT/BIC code (for international payments),
ABA Routing Number (for US payments), Sort Code (UK), BSB (Australia), IFSC (India), etc.
Look for labels like 'SWIFT Code', 'BIC', 'ABA No.', 'Routing No.', 'IFSC', 'Sort Code', 'BSB'. Example: 'Swift Code: CHASUS33' or 'ABA (Routing) #: 071000013' (for ACH) or 'Bank Routing Number: 021000021' (for Wire)[cite: 29]. Prioritize SWIFT if available for international context, or the most relevant routing for the transaction type.`,
	},
	{
		Name: "Total Invoice Amount",
		Description: `The final, definitive total monetary sum due on the invoice, inclusive of all items, charges, taxes (if applicable and included in the final sum), and less any deductions reflected in the total.
This is often labeled 'Grand Total', 'Total Amount Due', 'Total Invoice Value', 'Please Pay This Amount'.
It should be the ultimate figure the buyer is expected to pay. Example: '$135,750.00 USD' [cite: 3] (appears as the main extension and final sum in this proforma).`,
	},
	{
		Name: "Invoice Amount",
		Description: `This field typically refers to the primary sum of the invoice. It can be synonymous with 'Total Invoice Amount' if only one total is presented.
If there are multiple totals (e.g., Subtotal, Total before Tax, Grand Total), this should ideally capture the most representative invoiced amount, often the grand total.
Verify if it's distinct from other amounts like 'Subtotal'. In many cases, it will be the same as 'Total Invoice Amount'. Example: '$135,750.00 USD'[cite: 3].`,
	},
	{
		Name: "Beneficiary Name",
		Description: `The name of the ultimate recipient of the funds, usually the seller or exporter.
Look for labels like 'Beneficiary', 'Payable to', 'Beneficiary Name'. This is often the same as the 'SELLER NAME'.
Confirm if explicitly stated in a 'Payment Details' or 'Beneficiary Information' section. Example: 'Transcendia, Inc. - Depository'[cite: 29]. If just 'Transcendia, Inc.' is listed as seller[cite: 1], use that if more direct.`,
	},
	{
		Name: "Beneficiary Address",
		Description: `The full address of the beneficiary (seller/exporter) to whom the payment is directed.
This is commonly the same as the 'SELLER ADDRESS'. Check for specific 'Beneficiary Address' details if provided separately in payment instructions.
Example: '9201 W. Belmont Avenue Franklin Park, IL 60131' [cite: 29] associated with the beneficiary name.`,
	},
	{
		Name: "DESCRIPTION OF GOODS",
		Description: `A detailed account of the products or services being invoiced.
This is usually found in the main table or line items section of the invoice. It can include product names, codes, specifications, or service descriptions.
Extract all relevant descriptive text for each line item, or a summary if it's a very long list.
Example: 'HA Laminating Film 984mm X 1,829 LM Rolls'[cite: 3]. If multiple items, list them or summarize.`,
	},
	{
		Name: "QUANTITY OF GOODS",
		Description: `The amount or number of units for each item or service listed on the invoice.
Look for columns labeled 'Quantity', 'Qty', 'Units', 'No. of Items'.
Specify units if mentioned (e.g., pcs, kgs, hrs, SM). Example: '75,000 SM' (Square Meters)[cite: 3].`,
	},
	{
		Name: "PAYMENT TERMS",
		Description: `The conditions agreed upon for payment of the invoice, such as the timeframe and method.
Search for labels like 'Payment Terms', 'Terms of Payment', 'Terms'.
Examples include 'Net 30 days', 'Due Upon Receipt', '50% Advance, 50% on Delivery'.
Example: '50% advance and balance 50% after 60 days from the date of Bill of Lading (BL)'[cite: 3]. Also see 'Standard Payment terms - Net 30' [cite: 33] on a general info page, but prefer terms on the invoice itself.`,
	},
	{
		Name: "BENEFICIARY/SELLER'S SIGNATURE",
		Description: `The handwritten or digital signature of the authorized representative of the seller/beneficiary, or the typed name if a physical signature is replaced by it in a digital document.
Look for a signature line or block often labeled 'Seller's Signature', 'Authorized Signature', 'For [Seller Company Name]'.
This may not always be present, or could be a scanned image. Describe if present (e.g., "Signature present", "Typed name: Diana McGehee"). Example: 'Diana McGehee' typed below 'Sr Customer Service'[cite: 3], which might represent authorization.`,
	},
	{
		Name: "APPLICANT/BUYER'S SIGNATURE",
		Description: `The handwritten or digital signature of the authorized representative of the applicant/buyer, acknowledging the invoice or associated order.
Look for a signature line or block often labeled 'Buyer's Signature', 'Authorized Signature', 'Accepted By', 'For [Buyer Company Name]'.
This is less common on invoices themselves unless it's a proforma being accepted, but more common on related Purchase Orders. Example: 'Authorised Signatory' with a signature for 'For Arrow Business Advisory Private Limited' [cite: 4] at the bottom, indicating acceptance/issuance from buyer's perspective on a document they might have prepared or signed.`,
	},
	{
		Name: "MODE OF REMITTANCE",
		Description: `The method by which the payment is to be made (e.g., Wire Transfer, ACH, Cheque, Credit Card).
This information is often found within the 'Payment Instructions', 'Bank Details', or 'Payment Terms' sections.
The document shows 'ACH & Wire Transfer Instructions' [cite: 29] and mentions 'Credit cards are accepted' [cite: 32] and 'Remit to Address for Checks'[cite: 31]. List all applicable or the primary ones mentioned in context of this transaction.`,
	},
	{
		Name: "MODE OF TRANSIT",
		Description: `The method of transportation used for shipping the goods (e.g., Sea, Air, Road, Rail).
Look for labels like 'Ship Via', 'Mode of Shipment', 'Transport Mode', 'By'.
Example: 'Ship Via Ocean'[cite: 2], 'Mode of Shipment SEA'[cite: 12].`,
	},
	{
		Name: "INCO TERM",
		Description: `The Incoterm (International Commercial Term) specifies the responsibilities of buyers and sellers in international trade (e.g., EXW, FOB, CIF, DDP).
Look for labels like 'Incoterms', 'Terms of Sale', 'Freight Terms', or a three-letter code often followed by a location.
Example: 'EX-Works Richmond IN' [cite: 2] (EXW is the Incoterm).`,
	},
	{
		Name: "HS CODE",
		Description: `The Harmonized System (HS) code or HTS (Harmonized Tariff Schedule) code, which is an international nomenclature for the classification of products.
It allows customs authorities to identify products and apply duties and taxes. Look for labels like 'HS Code', 'HTS Code', 'Tariff Code'.
This is more common on Commercial or Customs Invoices. May not be present on all Proformas. If not found, state null.`,
	},
	{
		Name: "Intermediary Bank ( Field 56)",
		Description: `Details of any intermediary bank (correspondent bank) that is used to route the payment from the buyer's bank to the seller's (beneficiary's) bank.
Often referred to by 'Field 56' in SWIFT messages. Look for labels like 'Intermediary Bank', 'Correspondent Bank', or specific SWIFT field references if available.
This may not always be present or required. If not found, state null.`,
	},
	{
		Name: "INTERMEDIARY BANK NAME",
		Description: `The name of the intermediary bank, if one is specified in the payment instructions.
This would be under a section labeled 'Intermediary Bank'. If no such section or bank is named, state null.`,
	},
	{
		Name: "INTERMEDIARY BANK ADDRESS",
		Description: `The full address of the intermediary bank, if specified.
This information would be found along with the intermediary bank's name. If not present, state null.`,
	},
	{
		Name: "INTERMEDIARY BANK COUNTRY",
		Description: `The country where the intermediary bank is located, if specified.
Typically part of the intermediary bank's address. If not present, state null.`,
	},
	{
		Name: "Party Name ( Applicant )",
		Description: `The name of the party applying for a service related to the invoice, often the buyer/importer, especially in the context of a Letter of Credit or financing.
On an invoice, this is usually synonymous with the 'BUYER NAME'.
Look for labels like 'Applicant', or infer from the 'Buyer' or 'Bill To' details. Example: 'Arrow Business Advisory Pvt. Ltd'[cite: 4].`,
	},
	{
		Name: "Party Name ( Beneficiary )",
		Description: `The name of the party who is the beneficiary of the payment or transaction related to the invoice, typically the seller/exporter.
On an invoice, this is usually synonymous with the 'SELLER NAME' or 'BENEFICIARY NAME'.
Example: 'TRANSCENDIA, INC'[cite: 1], or more specifically 'Transcendia, Inc. - Depository'[cite: 29].`,
	},
	{
		Name: "Party Country ( Benefciary )",
		Description: `The country where the beneficiary (seller/exporter) is located.
This is typically the country of the 'SELLER ADDRESS' or 'BENEFICIARY ADDRESS'.
Example: USA (inferred from IN [cite: 1] or IL [cite: 29]).`,
	},
	{
		Name: "Party Type ( Beneficiary Bank )",
		Description: `The role or classification of the beneficiary's bank (e.g., 'Beneficiary Bank', 'Depository Bank').
This might be explicitly stated or inferred from its function of receiving funds for the beneficiary.
Example: 'Beneficiary Bank' is implied for JPMorgan Chase[cite: 29].`,
	},
	{
		Name: "Party Name (Beneficiary Bank )",
		Description: `The name of the bank that holds the account for the beneficiary (seller/exporter).
This is the same as 'BENEFICARY BANK'. Example: 'JPMorgan Chase'[cite: 29].`,
	},
	{
		Name: "Party Country ( Beneficiary Bank )",
		Description: `The country where the beneficiary's bank is located.
This is the country of the 'BENEFICAIRY BANK ADDRESS'. Example: USA (inferred from 'New York, NY' [cite: 29]).`,
	},
	{
		Name: "Drawee Address",
		Description: `The name and address of the party on whom a draft or bill of exchange (if applicable to the transaction) is drawn.
This is often the buyer or the buyer's bank. If no draft is mentioned or involved, this may not be applicable.
Look for terms like 'Drawee'. On a standard invoice, this might be the Buyer's address if they are the direct payer. Example: If a draft is drawn on the buyer, it would be the buyer's address '159 Mittal Industrial Estate...India'[cite: 4].`,
	},
	{
		Name: "PORT OF LOADING",
		Description: `The specific port or airport where the goods are loaded onto the main international transport vessel, aircraft, or vehicle for export.
Look for labels like 'Port of Loading', 'POL', 'From Port', 'Airport of Departure', 'Place of Receipt' (if it's the start of main carriage).
Example: 'Richmond IN' is mentioned under 'Freight EX-Works'[cite: 2], suggesting it's the point of origin/loading for an EXW term.`,
	},
	{
		Name: "PORT OF DISCHARGE",
		Description: `The specific port or airport where the goods are to be unloaded from the main international transport after arrival in the destination country.
Look for labels like 'Port of Discharge', 'POD', 'To Port', 'Airport of Destination', 'Place of Delivery' (if it's the end of main carriage).
Example: 'Nhava Sheva Port' [cite: 2] mentioned under 'Ship Via' and also as delivery location in PO[cite: 17].`,
	},
	{
		Name: "VESSEL TYPE",
		Description: `The general type of transport conveyance used for the main leg of the journey (e.g., 'Vessel', 'Aircraft', 'Truck', 'Container Ship').
This may be inferred from 'Mode of Transit' (e.g., if 'Ocean' or 'Sea', then 'Vessel').
Example: 'Ocean' implies a vessel[cite: 2]. If 'SEA' is mentioned[cite: 12], it also implies a vessel.`,
	},
	{
		Name: "VESSEL NAME",
		Description: `The specific name of the ship or vessel carrying the goods, or the flight number if by air, or voyage number.
Look for labels like 'Vessel Name', 'Voyage No.', 'Flight No.', 'Carrier Name'.
This is often found in shipping details sections. May not be present on a proforma invoice issued long before shipment. If not found, state null.`,
	},
	{
		Name: "THIRD PARTY EXPORTER NAME",
		Description: `The name of a third-party exporter, if different from the primary seller listed on the invoice.
This situation arises if another company handles the export formalities or is named as the exporter of record for other reasons.
Look for distinct fields like 'Third Party Exporter', or if the 'Exporter' field names a different entity than the 'Seller' or 'Beneficiary'. If not mentioned or not applicable, state null.`,
	},
	{
		Name: "THIRD PARTY EXPORTER COUNTRY",
		Description: `The country of the third-party exporter, if such a party is named.
This would be part of the third-party exporter's address details. If no third-party exporter is mentioned, state null.`,
	},
}

// documentFields maps registered document types to their extraction fields.
// Detected types without an entry here are skipped during processing.
var documentFields = map[string][]FieldDefinition{
	DocumentTypeCRL:     crlFields,
	DocumentTypeInvoice: invoiceFields,
}

// registeredOrder fixes the order in which registered document types appear
// in generated reports.
var registeredOrder = []string{DocumentTypeCRL, DocumentTypeInvoice}

// FieldsFor returns the extraction field registry for a document type. The
// boolean is false for types that are detected but carry no registered fields.
func FieldsFor(docType string) ([]FieldDefinition, bool) {
	fields, ok := documentFields[docType]
	return fields, ok
}

// IsRegistered reports whether a document type has registered extraction fields.
func IsRegistered(docType string) bool {
	_, ok := documentFields[docType]
	return ok
}

// RegisteredTypes returns the document types with registered fields, in report
// column order.
func RegisteredTypes() []string {
	types := make([]string, len(registeredOrder))
	copy(types, registeredOrder)
	return types
}
