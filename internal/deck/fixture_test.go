package deck

import "github.com/landrecords/landdeck/internal/slides"

// phase1Slides is the Phase 1 content exactly as it must appear in the
// presentation.
var phase1Slides = []slides.Slide{
	{
		Layout: slides.TitleLayout,
		Title:  "Blockchain-Based Land Records Management System",
		Body:   "Applied Cryptography in Real-World Land Registry\n\nApplied Cryptography Lab\nR.V. College of Engineering, Bangalore\nPhase 1 - Project Proposal & Design",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Problem Statement",
		Body:   "Current Challenges in Land Records Management:\n\n• ❌ Fraud & Tampering: Paper-based records easily manipulated\n• ❌ Centralized Control: Single point of failure\n• ❌ Lack of Transparency: Opaque processes\n• ❌ Time-consuming: Manual verification processes\n• ❌ Geographic Limitations: Physical access required\n\nReal-World Impact:\n• 70% of land disputes in India due to document tampering\n• Average land registration time: 3-6 months\n• Estimated fraud losses: ₹1,000+ crores annually",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Proposed Solution",
		Body:   "Blockchain-Based Land Records Management System\n\nCore Concept:\n• 🔐 Immutable Records: Once stored, cannot be altered\n• 🔗 Distributed Ledger: No single point of failure\n• 👁️ Transparent: All transactions visible to stakeholders\n• ⚡ Automated: Smart contracts for verification\n• 🌐 Accessible: Digital access from anywhere\n\nCryptography Integration:\n• SHA-256 hashing for document integrity\n• Digital signatures for authentication\n• Public-key cryptography for secure transactions",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Cryptography Components Used",
		Body:   "1. Hash Functions (SHA-256)\n   • Purpose: Document integrity verification\n   • Implementation: ethers.keccak256() for document hashing\n   • Security: Collision-resistant, one-way function\n\n2. Digital Signatures (ECDSA)\n   • Purpose: Authentication and non-repudiation\n   • Implementation: MetaMask integration for signing\n   • Algorithm: Elliptic Curve Digital Signature Algorithm\n\n3. Public-Key Cryptography\n   • Purpose: Secure key management\n   • Implementation: Ethereum wallet addresses\n   • Security: Asymmetric encryption\n\n4. Merkle Trees\n   • Purpose: Efficient data verification\n   • Implementation: Blockchain state verification\n   • Benefits: Logarithmic proof size",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Technical Architecture",
		Body:   "System Components:\n\nFrontend (React.js) ↔ Backend (Node.js) ↔ Blockchain (Ethereum)\n     ↓                    ↓                    ↓\nUser Interface    API Services        Smart Contracts\nDocument Upload   Authentication      Land Record Storage\nMetaMask Integration Data Validation  Digital Signatures\n\nCryptography Flow:\n1. Document → SHA-256 Hash\n2. Hash + User → Digital Signature\n3. Signature + Metadata → Smart Contract\n4. Contract → Blockchain Storage",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Technology Stack",
		Body:   "Frontend Technologies:\n• React.js: Modern UI framework\n• Material-UI: Professional design system\n• Ethers.js: Ethereum interaction library\n• MetaMask: Wallet integration\n\nBackend Technologies:\n• Node.js: Server-side runtime\n• Express.js: Web framework\n• MongoDB: Document database\n• TypeScript: Type-safe development\n\nBlockchain Technologies:\n• Ethereum: Smart contract platform\n• Solidity: Smart contract language\n• Ganache: Local blockchain development\n• Truffle: Development framework\n\nCryptography Libraries:\n• OpenSSL: Cryptographic functions\n• Web3.js: Blockchain cryptography\n• Crypto-js: JavaScript cryptography",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Implementation Methodology",
		Body:   "Phase 1: Foundation (Current)\n• ✅ Project setup and architecture design\n• ✅ Smart contract development\n• ✅ Basic frontend-backend integration\n• ✅ Cryptography integration planning\n\nPhase 2: Core Development\n• 🔄 Document upload and hashing\n• 🔄 Digital signature implementation\n• 🔄 Smart contract deployment\n• 🔄 User authentication system\n\nPhase 3: Advanced Features\n• 📋 Multi-signature support\n• 📋 Document versioning\n• 📋 Access control mechanisms\n• 📋 Audit trail implementation\n\nPhase 4: Testing & Deployment\n• 📋 Security testing\n• 📋 Performance optimization\n• 📋 User acceptance testing\n• 📋 Production deployment",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Cryptography Implementation Details",
		Body:   "Document Hashing Process:\n// SHA-256 Hashing Implementation\nconst documentHash = ethers.keccak256(documentBytes);\n// Ensures document integrity and prevents tampering\n\nDigital Signature Process:\n// ECDSA Digital Signature\nconst signature = await signer.signMessage(documentHash);\n// Provides authentication and non-repudiation\n\nSmart Contract Storage:\n// Solidity Smart Contract\nstruct LandRecord {\n    bytes32 documentHash;\n    address owner;\n    bytes signature;\n    uint256 timestamp;\n}\n\nSecurity Features:\n• Immutable Storage: Once stored, cannot be modified\n• Cryptographic Proofs: Mathematical verification\n• Decentralized: No single point of failure\n• Transparent: All transactions visible",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Real-World Impact & Applications",
		Body:   "Government Sector:\n• 🏛️ Land Registration Offices: Streamlined processes\n• 🏛️ Municipal Corporations: Property tax management\n• 🏛️ Courts: Dispute resolution support\n\nPrivate Sector:\n• 🏢 Real Estate Companies: Property verification\n• 🏢 Banks: Mortgage processing\n• 🏢 Insurance Companies: Property insurance\n\nSocial Impact:\n• 👥 Reduced Fraud: Tamper-proof records\n• 👥 Faster Processing: Automated verification\n• 👥 Increased Transparency: Public access to records\n• 👥 Cost Reduction: Eliminates manual processes\n\nEconomic Benefits:\n• 💰 Reduced Administrative Costs: 60-80% savings\n• 💰 Faster Transactions: 90% time reduction\n• 💰 Fraud Prevention: Billions saved annually",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Cryptography Security Analysis",
		Body:   "Cryptographic Strength:\n• SHA-256: 256-bit hash, collision-resistant\n• ECDSA: 256-bit key, quantum-resistant\n• AES-256: Symmetric encryption for data protection\n\nAttack Vectors & Mitigation:\n• Brute Force: Large key space prevents attacks\n• Man-in-the-Middle: TLS/SSL encryption\n• Replay Attacks: Nonce-based protection\n• 51% Attack: Distributed consensus prevents\n\nCompliance & Standards:\n• NIST Standards: FIPS 140-2 compliant\n• ISO Standards: ISO/IEC 27001 security\n• GDPR Compliance: Data protection regulations",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Challenges & Solutions",
		Body:   "Technical Challenges:\n• Scalability: Layer 2 solutions (Polygon, Optimism)\n• Gas Costs: Optimized smart contracts\n• User Adoption: Intuitive UI/UX design\n• Interoperability: Cross-chain bridges\n\nCryptography Challenges:\n• Key Management: Hardware security modules\n• Quantum Threats: Post-quantum cryptography\n• Performance: Optimized algorithms\n• Standards: Industry compliance\n\nRegulatory Challenges:\n• Legal Framework: Government partnerships\n• Data Privacy: Zero-knowledge proofs\n• Audit Requirements: Transparent reporting\n• International Standards: Cross-border compliance",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Future Enhancements",
		Body:   "Advanced Cryptography:\n• Zero-Knowledge Proofs: Privacy-preserving verification\n• Homomorphic Encryption: Encrypted computation\n• Multi-Party Computation: Distributed privacy\n• Post-Quantum Cryptography: Future-proof security\n\nAI Integration:\n• Document Analysis: OCR and verification\n• Fraud Detection: Machine learning algorithms\n• Predictive Analytics: Risk assessment\n• Automated Compliance: Regulatory monitoring\n\nIoT Integration:\n• GPS Verification: Location-based validation\n• Sensor Data: Environmental monitoring\n• Smart Contracts: Automated compliance\n• Real-time Updates: Live data feeds",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Evaluation Metrics",
		Body:   "Technical Metrics:\n• Transaction Speed: < 5 seconds\n• System Uptime: 99.9% availability\n• Security Score: 95%+ vulnerability-free\n• Scalability: 10,000+ concurrent users\n\nCryptography Metrics:\n• Hash Collision Resistance: 2^128 security level\n• Signature Verification: < 100ms\n• Key Generation: < 1 second\n• Encryption Overhead: < 5% performance impact\n\nBusiness Metrics:\n• Cost Reduction: 70% operational savings\n• Processing Time: 90% faster than traditional\n• Fraud Prevention: 95% reduction in cases\n• User Satisfaction: 90%+ approval rating",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Conclusion & Next Steps",
		Body:   "Project Summary:\n• 🔐 Secure: Cryptographically protected land records\n• 🌐 Scalable: Blockchain-based distributed system\n• 💡 Innovative: Modern cryptography integration\n• 🎯 Practical: Real-world problem solution\n\nCryptography Impact:\n• Document Integrity: SHA-256 hashing\n• Authentication: ECDSA digital signatures\n• Confidentiality: Public-key cryptography\n• Non-repudiation: Cryptographic proofs\n\nNext Steps:\n1. Phase 2 Development: Core functionality implementation\n2. Security Auditing: Third-party security review\n3. Pilot Testing: Government partnership\n4. Production Deployment: Live system launch\n\nLearning Outcomes:\n• Applied cryptography in real-world scenarios\n• Blockchain technology integration\n• Smart contract development\n• Security-first design principles",
	},
	{
		Layout: slides.TitleAndContentLayout,
		Title:  "Q&A Session",
		Body:   "Thank You!\n\nContact Information:\n• Email: [Your Email]\n• GitHub: [Your GitHub]\n• Project Repository: [Repository Link]\n\nReferences:\n• NIST Cryptographic Standards\n• Ethereum Development Documentation\n• Applied Cryptography by Bruce Schneier\n• Blockchain Technology Research Papers\n\nKey Points to Remember:\n• Cryptography is the foundation of the entire system\n• Real-world problem with measurable impact\n• Technical depth with practical implementation\n• Security-first approach throughout development\n• Scalable and extensible architecture",
	},
}
