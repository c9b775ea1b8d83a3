// Package vertexai implements field extraction and document classification on
// top of the Vertex AI Gemini API. Prompts ask the model for strict JSON and
// responses are decoded defensively since models occasionally wrap output in
// markdown fences or drift from the requested shape.
package vertexai
