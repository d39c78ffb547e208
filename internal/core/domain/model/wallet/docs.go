// Package wallet is the partner ledger: a Wallet per partner and the append-only
// Transactions whose signed sum equals its balance.
package wallet
