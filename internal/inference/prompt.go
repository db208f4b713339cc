package inference

const extractionSystemPrompt = "You are an expert HR assistant that extracts structured data from resumes."

const extractionPrompt = `
Extract the following candidate details from the resume and return ONLY valid JSON:

- name
- email
- phone
- summary
- skills (list of strings)
- experience (list of objects: company, title, duration, description)
- education (list of objects: degree, institution, year)
- linkedin_profile (string URL if available)

Resume:
%s
`

const chatSystemPrompt = "You are an HR assistant answering based only on the provided candidate profile."

const chatPrompt = `
Here is a candidate profile:
%s

User question: %s
`
