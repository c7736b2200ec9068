package models

import "time"

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&AgencyModel{},
		&ServiceModuleModel{},
		&ServiceApplicationModel{},
		&ServiceQuoteModel{},
		&InvoiceSequenceModel{},
		&InvoiceModel{},
		&PaymentModel{},
		&WalletModel{},
		&WalletTransactionModel{},
		&BlogPostModel{},
		&PageModel{},
		&MenuModel{},
		&AdModel{},
		&SeoMetaModel{},
		&AirportModel{},
	}
}

// utcPtr stores optional timestamps in UTC so range filters compare consistently.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
