package docs

import "time"

var referencePages = []Page{
	{
		Slug:      "protocols",
		Title:     "Agent Protocols",
		Badge:     "Integrations",
		Summary:   "x402 and AP2 support for payments initiated by autonomous agents.",
		UpdatedAt: time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
		SEO: PageSEO{
			Title:       "Agent Protocols | Sardis Docs",
			Description: "Accept and originate agent payments over x402 and AP2 with Sardis wallets.",
		},
		Sections: []Section{
			{
				Heading: "Why protocols",
				Blocks: []Block{
					Paragraph("When the payer is an autonomous agent rather than a person, the payment has to be negotiated in-band: the service quotes a price, the agent pays, the service verifies and fulfils. Sardis implements the two emerging standards for this handshake so agents holding Sardis wallets can transact with any compliant counterparty."),
				},
			},
			{
				Heading: "x402",
				Blocks: []Block{
					Paragraph("x402 revives HTTP status `402 Payment Required`: a server answers an unpaid request with 402 and a machine-readable quote; the client retries with an `X-Payment` header carrying a signed settlement payload. Sardis acts as the facilitator — it verifies and settles the payload against the paying wallet."),
					Code("bash", `# server side: quote a protected resource
HTTP/1.1 402 Payment Required
Content-Type: application/json

{
  "x402Version": 1,
  "accepts": [{
    "scheme": "exact",
    "network": "base",
    "asset": "USDC",
    "maxAmountRequired": "0.25",
    "payTo": "0x9A1f7b3C44De5E21aB1E5c7dD1D06d7E9F4a2B10",
    "resource": "https://api.example.com/reports/42"
  }]
}`),
					Code("python", `import sardis

client = sardis.Client(api_key=os.environ["SARDIS_API_KEY"])

# agent side: pay the quote and retry the request
receipt = client.x402.pay(
    wallet_id="wal_2ZK9mVq7TtPaXCg",
    quote=quote_from_402_response,
)
response = httpx.get(url, headers={"X-Payment": receipt.header})`),
					Callout(CalloutInfo, "x402 settlement runs on the normal payment pipeline: wallet policies apply, and a `payment.confirmed` webhook fires per settled request."),
				},
			},
			{
				Heading: "AP2",
				Blocks: []Block{
					Paragraph("AP2 (Agent Payments Protocol) covers delegated commerce: a human grants an agent a signed *mandate* describing what it may buy and for how much, and merchants verify the mandate chain before accepting. Sardis issues and verifies mandates bound to wallet spend policies."),
					Code("javascript", `import { Sardis } from "@sardis/sdk";

const sardis = new Sardis(process.env.SARDIS_API_KEY);

const mandate = await sardis.ap2.createMandate({
  walletId: "wal_2ZK9mVq7TtPaXCg",
  scope: { merchant: "travel", maxTotal: { asset: "USDC", amount: "800.00" } },
  expiresIn: "72h",
});
// hand mandate.token to the shopping agent`),
					Table(
						[]string{"Mandate field", "Purpose"},
						[]string{"scope.merchant", "Category or merchant allowlist the agent may transact with."},
						[]string{"scope.maxTotal", "Cumulative cap across every payment under the mandate."},
						[]string{"expiresIn", "Hard expiry; settled payments after expiry are refused."},
					),
				},
			},
			{
				Heading: "Choosing between them",
				Blocks: []Block{
					Paragraph("Use x402 for machine-to-machine metered access (APIs, data, inference) where each request is priced; use AP2 when a human delegates bounded purchasing authority to an agent. The two compose: an AP2-mandated agent can settle x402 quotes within its mandate."),
				},
			},
		},
	},
	{
		Slug:      "sdks",
		Title:     "SDKs",
		Badge:     "Integrations",
		Summary:   "Official TypeScript and Python clients, installation, and conventions.",
		UpdatedAt: time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC),
		SEO: PageSEO{
			Title:       "SDKs | Sardis Docs",
			Description: "Official Sardis SDKs for TypeScript and Python.",
		},
		Sections: []Section{
			{
				Heading: "Installation",
				Blocks: []Block{
					Code("bash", `# TypeScript / JavaScript
npm install @sardis/sdk

# Python
pip install sardis`),
					Table(
						[]string{"SDK", "Runtime", "Source"},
						[]string{"@sardis/sdk", "Node 18+, Deno, Bun, edge runtimes", "github.com/sardis-hq/sardis-node"},
						[]string{"sardis", "Python 3.10+", "github.com/sardis-hq/sardis-python"},
					),
				},
			},
			{
				Heading: "Conventions",
				Blocks: []Block{
					Paragraph("Both SDKs are thin, typed wrappers over the REST API: resource namespaces mirror URL paths, amounts stay decimal strings end to end, and every mutating call accepts an idempotency key. Retries with backoff are built in for idempotent requests."),
					Code("javascript", `import { Sardis } from "@sardis/sdk";

const sardis = new Sardis(process.env.SARDIS_API_KEY);

const wallet = await sardis.wallets.create({ chain: "base", label: "app" });
const payment = await sardis.payments.create(
  {
    walletId: wallet.id,
    asset: "USDC",
    amount: "5.00",
    destination: "rcp_6Hw3JpVdQx9Aa2b",
  },
  { idempotencyKey: taskId },
);`),
					Code("python", `import sardis

client = sardis.Client(api_key=os.environ["SARDIS_API_KEY"])

for payment in client.payments.list(status="confirmed", limit=50):
    print(payment.id, payment.amount, payment.asset)`),
					Callout(CalloutInfo, "SDK versions track the API date-based version. Pin a minor version and read the changelog before upgrading across an API version bump."),
				},
			},
			{
				Heading: "Errors in SDKs",
				Blocks: []Block{
					Paragraph("API errors surface as typed exceptions (`SardisAPIError` in Python, `SardisError` in TypeScript) carrying the HTTP status, the stable error `code`, and the request id to quote in support tickets."),
				},
			},
		},
	},
	{
		Slug:      "errors",
		Title:     "Error Handling",
		Badge:     "Reference",
		Summary:   "The error envelope, stable error codes, and retry guidance.",
		UpdatedAt: time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC),
		SEO: PageSEO{
			Title:       "Error Handling | Sardis Docs",
			Description: "Sardis API error envelope, stable codes, and retry guidance.",
		},
		Sections: []Section{
			{
				Heading: "Error envelope",
				Blocks: []Block{
					Paragraph("Every non-2xx response carries the same JSON envelope. The `code` is stable and safe to branch on; `message` is human-readable and may change."),
					Code("json", `{
  "error": {
    "code": "policy_violation",
    "message": "Payment exceeds the wallet's per-transaction cap of 500.00 USDC.",
    "request_id": "req_9Pc4KsWfUz5Ee6g",
    "doc_url": "https://docs.sardis.sh/docs/errors"
  }
}`),
				},
			},
			{
				Heading: "Common codes",
				Blocks: []Block{
					Table(
						[]string{"Status", "Code", "Retry?"},
						[]string{"400", "invalid_request", "No — fix the request."},
						[]string{"401", "invalid_api_key", "No — check key and environment."},
						[]string{"402", "insufficient_funds", "After funding the wallet."},
						[]string{"403", "policy_violation", "No — adjust the wallet policy or amount."},
						[]string{"409", "idempotency_conflict", "No — same key reused with a different body."},
						[]string{"429", "rate_limited", "Yes — honor Retry-After."},
						[]string{"500", "internal_error", "Yes — with backoff and the same idempotency key."},
					),
				},
			},
			{
				Heading: "Retry guidance",
				Blocks: []Block{
					Paragraph("Retry only `429` and `5xx`, always with the original idempotency key, and with jittered exponential backoff starting at one second. Everything else is deterministic: retrying an `invalid_request` yields the same failure."),
					Callout(CalloutWarning, "Never retry a payment create without an idempotency key — a timeout does not mean the payment was not created."),
				},
			},
		},
	},
	{
		Slug:      "limits",
		Title:     "Rate Limits",
		Badge:     "Reference",
		Summary:   "Request quotas, headers, and how limits differ per environment.",
		UpdatedAt: time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		SEO: PageSEO{
			Title:       "Rate Limits | Sardis Docs",
			Description: "Sardis API rate limits and quota headers.",
		},
		Sections: []Section{
			{
				Heading: "Quotas",
				Blocks: []Block{
					Table(
						[]string{"Environment", "Read req/s", "Write req/s", "Burst"},
						[]string{"Testnet", "25", "10", "2×"},
						[]string{"Production", "100", "50", "2×"},
					),
					Paragraph("Limits apply per organization, not per key. Production limits are soft defaults; contact support for higher sustained throughput."),
				},
			},
			{
				Heading: "Headers",
				Blocks: []Block{
					Paragraph("Every response reports the current window. On `429`, `Retry-After` gives the seconds to wait."),
					Code("text", `RateLimit-Limit: 100
RateLimit-Remaining: 97
RateLimit-Reset: 1
Retry-After: 12`),
					Callout(CalloutInfo, "Webhook deliveries and dashboard traffic do not count against API quotas."),
				},
			},
		},
	},
}
