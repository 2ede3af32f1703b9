/*
Package txjson converts transaction records from and to their JSON
representation, which is the format used to persist a transaction while it
collects signatures.

A serialized record has the following shape

	{
	  "accountNumber": 7,
	  "sequence": 3,
	  "chainId": "cosmoshub-4",
	  "msgs": [
	    {"typeUrl": "/cosmos.bank.v1beta1.MsgSend", "value": {...}}
	  ],
	  "fee": {"amount": [{"denom": "uatom", "amount": "5000"}], "gas": "200000"},
	  "memo": ""
	}

where each message value is the protobuf JSON representation of the message
declared by the typeUrl attribute. Messages of an unknown type are never
encoded nor decoded.

Decoding a record is all or nothing. A record with a single malformed message
is rejected as a whole, because a transaction with silently dropped messages
must never be displayed for signing.
*/
package txjson
