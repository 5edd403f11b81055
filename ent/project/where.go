// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dappsmith/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// DappURL applies equality check predicate on the "dapp_url" field. It's identical to DappURLEQ.
func DappURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDappURL, v))
}

// WalletAddress applies equality check predicate on the "wallet_address" field. It's identical to WalletAddressEQ.
func WalletAddress(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWalletAddress, v))
}

// WalletSeedCipher applies equality check predicate on the "wallet_seed_cipher" field. It's identical to WalletSeedCipherEQ.
func WalletSeedCipher(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWalletSeedCipher, v))
}

// ConnectionSpecID applies equality check predicate on the "connection_spec_id" field. It's identical to ConnectionSpecIDEQ.
func ConnectionSpecID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldConnectionSpecID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeletedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// DappURLEQ applies the EQ predicate on the "dapp_url" field.
func DappURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDappURL, v))
}

// DappURLNEQ applies the NEQ predicate on the "dapp_url" field.
func DappURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDappURL, v))
}

// DappURLIn applies the In predicate on the "dapp_url" field.
func DappURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDappURL, vs...))
}

// DappURLNotIn applies the NotIn predicate on the "dapp_url" field.
func DappURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDappURL, vs...))
}

// DappURLGT applies the GT predicate on the "dapp_url" field.
func DappURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDappURL, v))
}

// DappURLGTE applies the GTE predicate on the "dapp_url" field.
func DappURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDappURL, v))
}

// DappURLLT applies the LT predicate on the "dapp_url" field.
func DappURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDappURL, v))
}

// DappURLLTE applies the LTE predicate on the "dapp_url" field.
func DappURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDappURL, v))
}

// DappURLContains applies the Contains predicate on the "dapp_url" field.
func DappURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDappURL, v))
}

// DappURLHasPrefix applies the HasPrefix predicate on the "dapp_url" field.
func DappURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDappURL, v))
}

// DappURLHasSuffix applies the HasSuffix predicate on the "dapp_url" field.
func DappURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDappURL, v))
}

// DappURLEqualFold applies the EqualFold predicate on the "dapp_url" field.
func DappURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDappURL, v))
}

// DappURLContainsFold applies the ContainsFold predicate on the "dapp_url" field.
func DappURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDappURL, v))
}

// WalletAddressEQ applies the EQ predicate on the "wallet_address" field.
func WalletAddressEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWalletAddress, v))
}

// WalletAddressNEQ applies the NEQ predicate on the "wallet_address" field.
func WalletAddressNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWalletAddress, v))
}

// WalletAddressIn applies the In predicate on the "wallet_address" field.
func WalletAddressIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWalletAddress, vs...))
}

// WalletAddressNotIn applies the NotIn predicate on the "wallet_address" field.
func WalletAddressNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWalletAddress, vs...))
}

// WalletAddressGT applies the GT predicate on the "wallet_address" field.
func WalletAddressGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldWalletAddress, v))
}

// WalletAddressGTE applies the GTE predicate on the "wallet_address" field.
func WalletAddressGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldWalletAddress, v))
}

// WalletAddressLT applies the LT predicate on the "wallet_address" field.
func WalletAddressLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldWalletAddress, v))
}

// WalletAddressLTE applies the LTE predicate on the "wallet_address" field.
func WalletAddressLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldWalletAddress, v))
}

// WalletAddressContains applies the Contains predicate on the "wallet_address" field.
func WalletAddressContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldWalletAddress, v))
}

// WalletAddressHasPrefix applies the HasPrefix predicate on the "wallet_address" field.
func WalletAddressHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldWalletAddress, v))
}

// WalletAddressHasSuffix applies the HasSuffix predicate on the "wallet_address" field.
func WalletAddressHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldWalletAddress, v))
}

// WalletAddressEqualFold applies the EqualFold predicate on the "wallet_address" field.
func WalletAddressEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldWalletAddress, v))
}

// WalletAddressContainsFold applies the ContainsFold predicate on the "wallet_address" field.
func WalletAddressContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldWalletAddress, v))
}

// WalletSeedCipherEQ applies the EQ predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWalletSeedCipher, v))
}

// WalletSeedCipherNEQ applies the NEQ predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWalletSeedCipher, v))
}

// WalletSeedCipherIn applies the In predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWalletSeedCipher, vs...))
}

// WalletSeedCipherNotIn applies the NotIn predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWalletSeedCipher, vs...))
}

// WalletSeedCipherGT applies the GT predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldWalletSeedCipher, v))
}

// WalletSeedCipherGTE applies the GTE predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldWalletSeedCipher, v))
}

// WalletSeedCipherLT applies the LT predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldWalletSeedCipher, v))
}

// WalletSeedCipherLTE applies the LTE predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldWalletSeedCipher, v))
}

// WalletSeedCipherContains applies the Contains predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldWalletSeedCipher, v))
}

// WalletSeedCipherHasPrefix applies the HasPrefix predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldWalletSeedCipher, v))
}

// WalletSeedCipherHasSuffix applies the HasSuffix predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldWalletSeedCipher, v))
}

// WalletSeedCipherEqualFold applies the EqualFold predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldWalletSeedCipher, v))
}

// WalletSeedCipherContainsFold applies the ContainsFold predicate on the "wallet_seed_cipher" field.
func WalletSeedCipherContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldWalletSeedCipher, v))
}

// ConnectionSpecIDEQ applies the EQ predicate on the "connection_spec_id" field.
func ConnectionSpecIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldConnectionSpecID, v))
}

// ConnectionSpecIDNEQ applies the NEQ predicate on the "connection_spec_id" field.
func ConnectionSpecIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldConnectionSpecID, v))
}

// ConnectionSpecIDIn applies the In predicate on the "connection_spec_id" field.
func ConnectionSpecIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldConnectionSpecID, vs...))
}

// ConnectionSpecIDNotIn applies the NotIn predicate on the "connection_spec_id" field.
func ConnectionSpecIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldConnectionSpecID, vs...))
}

// ConnectionSpecIDGT applies the GT predicate on the "connection_spec_id" field.
func ConnectionSpecIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldConnectionSpecID, v))
}

// ConnectionSpecIDGTE applies the GTE predicate on the "connection_spec_id" field.
func ConnectionSpecIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldConnectionSpecID, v))
}

// ConnectionSpecIDLT applies the LT predicate on the "connection_spec_id" field.
func ConnectionSpecIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldConnectionSpecID, v))
}

// ConnectionSpecIDLTE applies the LTE predicate on the "connection_spec_id" field.
func ConnectionSpecIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldConnectionSpecID, v))
}

// ConnectionSpecIDContains applies the Contains predicate on the "connection_spec_id" field.
func ConnectionSpecIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldConnectionSpecID, v))
}

// ConnectionSpecIDHasPrefix applies the HasPrefix predicate on the "connection_spec_id" field.
func ConnectionSpecIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldConnectionSpecID, v))
}

// ConnectionSpecIDHasSuffix applies the HasSuffix predicate on the "connection_spec_id" field.
func ConnectionSpecIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldConnectionSpecID, v))
}

// ConnectionSpecIDIsNil applies the IsNil predicate on the "connection_spec_id" field.
func ConnectionSpecIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldConnectionSpecID))
}

// ConnectionSpecIDNotNil applies the NotNil predicate on the "connection_spec_id" field.
func ConnectionSpecIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldConnectionSpecID))
}

// ConnectionSpecIDEqualFold applies the EqualFold predicate on the "connection_spec_id" field.
func ConnectionSpecIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldConnectionSpecID, v))
}

// ConnectionSpecIDContainsFold applies the ContainsFold predicate on the "connection_spec_id" field.
func ConnectionSpecIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldConnectionSpecID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldDeletedAt))
}

// HasRecordings applies the HasEdge predicate on the "recordings" edge.
func HasRecordings() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordingsTable, RecordingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingsWith applies the HasEdge predicate on the "recordings" edge with a given conditions (other predicates).
func HasRecordingsWith(preds ...predicate.Recording) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newRecordingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuiteRuns applies the HasEdge predicate on the "suite_runs" edge.
func HasSuiteRuns() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuiteRunsTable, SuiteRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuiteRunsWith applies the HasEdge predicate on the "suite_runs" edge with a given conditions (other predicates).
func HasSuiteRunsWith(preds ...predicate.SuiteRun) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSuiteRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
