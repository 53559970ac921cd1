package policy

import "fmt"

// SecureTransportDenyStatement builds the deny-all statement attached to
// every deployment bucket: any request made without transport encryption is
// refused, for the bucket itself and everything under it. This statement is
// always attached; it is not feature-gated.
func SecureTransportDenyStatement(bucketArn string) (PolicyStatement, error) {
	if bucketArn == "" {
		return PolicyStatement{}, fmt.Errorf("policy: bucket ARN is required for the transport deny statement")
	}

	return PolicyStatement{
		Sid:       "DenyInsecureTransport",
		Effect:    EffectDeny,
		Principal: AllPrincipal,
		Action:    "s3:*",
		Resource:  []string{bucketArn, bucketArn + "/*"},
		Condition: Json{
			Bool: Json{"aws:SecureTransport": "false"},
		},
	}, nil
}
