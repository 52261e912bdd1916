// Package gemini is a client library for Google's Gemini generative language
// API. It covers text generation and chat conversations, incremental
// streaming, JSON-structured output, function-call declarations, safety
// settings, and model listing.
//
// Authentication uses an API key, provided either explicitly to [New] or via
// the GEMINI_API_KEY environment variable with [NewFromEnv].
//
// The simplest entry point is a chat session:
//
//	client := gemini.NewFromEnv()
//	chat := client.Chat("gemini-2.0-flash")
//	response, err := chat.SendMessage(ctx, "What is Go's memory model?")
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(response.Text())
//
// Lower-level single requests go through [Client.GenerateContent] and
// [Client.StreamGenerateContent]; wire types live in the types package.
package gemini
