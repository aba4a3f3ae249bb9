// Package catalog implements the product ledger: the Product record, the
// in-memory Catalog, shape validation, and the Store that moves a Catalog
// between memory and its JSON file.
//
// # File Format
//
// A ledger file is a UTF-8 JSON array. Each element is an object with the
// keys "product" (string), "shop" (string) and "cost" (number):
//
//	[
//	    {
//	        "product": "bread",
//	        "shop": "Market1",
//	        "cost": 2.5
//	    }
//	]
//
// Files are written with 4-space indentation and non-ASCII text kept
// literal. Missing keys are tolerated on read and take their zero value.
//
// # Validation
//
// Every element read from disk is checked against the Store's Schema. What
// happens to an element that fails the check depends on the Policy:
// PolicyWarn logs it and loads it with defaults, PolicyReject aborts the
// load with a *ValidationError.
//
// # Usage Example
//
//	store := catalog.NewStore(catalog.DefaultSchema(), catalog.PolicyWarn, logger)
//
//	products, err := store.Load("products.json")
//	if err != nil {
//		return err
//	}
//
//	products, err = catalog.Add(products, "bread", "Market1", 2.5)
//	if err != nil {
//		return err
//	}
//
//	if err := store.Save("products.json", products); err != nil {
//		return err
//	}
package catalog
