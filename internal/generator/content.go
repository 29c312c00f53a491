package generator

// Hardcoded documentation sources. Each topic's Markdown is a fixed
// template; regeneration rewrites the same bytes, so the job is
// idempotent given unchanged source.

type topic struct {
	Title    string
	Markdown string
}

type apiSource struct {
	// ID is the directory name and URL id. Kept explicit rather than
	// derived: ToKebab would split brand casing ("GitHub" -> "git-hub").
	ID     string
	Name   string
	Topics []topic
}

var apiSources = []apiSource{
	{
		ID:   "stripe",
		Name: "Stripe",
		Topics: []topic{
			{Title: "Payment Intents", Markdown: stripePaymentIntents},
			{Title: "Customers", Markdown: stripeCustomers},
			{Title: "Refunds", Markdown: stripeRefunds},
		},
	},
	{
		ID:   "sendgrid",
		Name: "Sendgrid",
		Topics: []topic{
			{Title: "Mail Send", Markdown: sendgridMailSend},
			{Title: "Webhooks", Markdown: sendgridWebhooks},
		},
	},
	{
		ID:   "twilio",
		Name: "Twilio",
		Topics: []topic{
			{Title: "Messages", Markdown: twilioMessages},
			{Title: "Voice Calls", Markdown: twilioVoiceCalls},
		},
	},
	{
		ID:   "github",
		Name: "GitHub",
		Topics: []topic{
			{Title: "Repositories", Markdown: githubRepositories},
			{Title: "Issues", Markdown: githubIssues},
		},
	},
	{
		ID:   "openai",
		Name: "OpenAI",
		Topics: []topic{
			{Title: "Chat Completions", Markdown: openaiChatCompletions},
			{Title: "Embeddings", Markdown: openaiEmbeddings},
		},
	},
}

const stripePaymentIntents = `# Payment Intents

A **PaymentIntent** tracks the lifecycle of a single payment, from
creation through confirmation to capture.

## Create a PaymentIntent

` + "```python" + `
import stripe

intent = stripe.PaymentIntent.create(
    amount=2000,
    currency="usd",
    automatic_payment_methods={"enabled": True},
)
` + "```" + `

The ` + "`client_secret`" + ` on the returned intent is passed to your
frontend to confirm the payment with [Stripe.js](https://docs.stripe.com/js).

## Statuses

| Status | Meaning |
| --- | --- |
| requires_payment_method | No payment method attached yet |
| requires_confirmation | Ready to confirm |
| succeeded | Funds captured |
`

const stripeCustomers = `# Customers

A **Customer** object holds saved payment methods, subscriptions, and
invoice settings for a repeat buyer.

## Create a customer

` + "```python" + `
customer = stripe.Customer.create(
    email="jenny.rosen@example.com",
    name="Jenny Rosen",
)
` + "```" + `

Attach a payment method with ` + "`stripe.PaymentMethod.attach`" + ` and
set it as the default via ` + "`invoice_settings.default_payment_method`" + `.
`

const stripeRefunds = `# Refunds

Refund a charge in full or in part. Refunds are issued against a
**PaymentIntent** or a charge id.

` + "```python" + `
stripe.Refund.create(payment_intent="pi_123", amount=500)
` + "```" + `

Partial refunds can be repeated until the full amount is returned; each
refund appears separately on the customer's statement.
`

const sendgridMailSend = `# Mail Send

Send transactional email through the **v3 Mail Send** endpoint.

` + "```bash" + `
curl -X POST https://api.sendgrid.com/v3/mail/send \
  -H "Authorization: Bearer $SENDGRID_API_KEY" \
  -H "Content-Type: application/json" \
  -d '{"personalizations":[{"to":[{"email":"to@example.com"}]}],
       "from":{"email":"from@example.com"},
       "subject":"Hello",
       "content":[{"type":"text/plain","value":"Hi there"}]}'
` + "```" + `

A ` + "`202 Accepted`" + ` response means the message was queued, not
delivered; track delivery through [Event Webhooks](https://docs.sendgrid.com/for-developers/tracking-events).
`

const sendgridWebhooks = `# Webhooks

The **Event Webhook** POSTs delivery events (processed, delivered,
bounced, opened) to a URL you configure.

Verify each request with the *signed event webhook* public key:

` + "```javascript" + `
const valid = webhook.verifySignature(publicKey, payload, signature, timestamp);
` + "```" + `

Respond with a ` + "`2xx`" + ` quickly; retries use exponential backoff
for up to 24 hours.
`

const twilioMessages = `# Messages

Send SMS and WhatsApp messages with the **Programmable Messaging** API.

` + "```python" + `
from twilio.rest import Client

client = Client(account_sid, auth_token)
message = client.messages.create(
    to="+15558675310",
    from_="+15017122661",
    body="Your appointment is confirmed.",
)
` + "```" + `

The returned ` + "`sid`" + ` identifies the message for status callbacks
and lookups.
`

const twilioVoiceCalls = `# Voice Calls

Place outbound calls with the **Voice** API. Call flow is controlled by
[TwiML](https://www.twilio.com/docs/voice/twiml) fetched from your URL.

` + "```python" + `
call = client.calls.create(
    to="+15558675310",
    from_="+15017122661",
    url="https://example.com/voice.xml",
)
` + "```" + `
`

const githubRepositories = `# Repositories

List, create, and manage repositories through the **REST API v3**.

` + "```bash" + `
curl -H "Authorization: Bearer $GITHUB_TOKEN" \
  https://api.github.com/user/repos?per_page=10
` + "```" + `

Pagination uses the ` + "`Link`" + ` response header; follow the
` + "`rel=\"next\"`" + ` URL until it disappears.
`

const githubIssues = `# Issues

Create an issue in a repository:

` + "```bash" + `
curl -X POST \
  -H "Authorization: Bearer $GITHUB_TOKEN" \
  https://api.github.com/repos/octocat/hello-world/issues \
  -d '{"title":"Found a bug","body":"Steps to reproduce..."}'
` + "```" + `

Issues and pull requests share ids; a PR *is* an issue with a
` + "`pull_request`" + ` key.
`

const openaiChatCompletions = `# Chat Completions

Generate model responses with the **Chat Completions** endpoint.

` + "```python" + `
from openai import OpenAI

client = OpenAI()
completion = client.chat.completions.create(
    model="gpt-4o",
    messages=[{"role": "user", "content": "Say hello."}],
)
` + "```" + `

Token usage is reported under ` + "`usage`" + `; stream partial output by
passing ` + "`stream=True`" + `.
`

const openaiEmbeddings = `# Embeddings

Turn text into vectors for search and clustering.

` + "```python" + `
response = client.embeddings.create(
    model="text-embedding-3-small",
    input="The food was delicious.",
)
vector = response.data[0].embedding
` + "```" + `

Cosine similarity between vectors approximates semantic similarity.
`
